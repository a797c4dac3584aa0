package gltfutil

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// Save writes doc as binary glTF for .glb and .vrm, JSON otherwise.
func Save(doc *gltf.Document, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".glb" || ext == ".vrm" {
		return gltf.SaveBinary(doc, path)
	}
	return gltf.Save(doc, path)
}

// ToSingleFile embeds external buffers and images so doc can be saved as .glb.
func ToSingleFile(doc *gltf.Document, srcDir string) error {
	for _, b := range doc.Buffers {
		b.URI = ""
	}
	for _, m := range doc.Images {
		if m.BufferView == nil && m.URI != "" && !strings.HasPrefix(m.URI, "data:") {
			buf, err := os.ReadFile(filepath.Join(srcDir, filepath.FromSlash(m.URI)))
			if err != nil {
				log.Print(err)
				continue
			}
			if m.MimeType == "" {
				if strings.HasSuffix(strings.ToLower(m.URI), ".png") {
					m.MimeType = "image/png"
				} else {
					m.MimeType = "image/jpeg"
				}
			}
			m.BufferView = gltf.Index(modeler.WriteBufferView(doc, gltf.TargetNone, buf))
			m.URI = ""
		}
	}
	return nil
}
