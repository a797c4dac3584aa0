package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/binzume/quatconv/config"
	"github.com/binzume/quatconv/converter"
	"github.com/binzume/quatconv/geom"
	"github.com/binzume/quatconv/gltfutil"
	"github.com/binzume/quatconv/mmd"
	"github.com/binzume/quatconv/preview"
	"github.com/qmuntal/gltf"
)

func saveDocument(doc *gltf.Document, output, srcDir string) error {
	ext := strings.ToLower(filepath.Ext(output))
	if ext == ".glb" || ext == ".vrm" {
		if err := gltfutil.ToSingleFile(doc, srcDir); err != nil {
			return err
		}
	}
	return gltfutil.Save(doc, output)
}

// previewRotation returns the rotation of the first root node of the
// default scene, or of node 0 when the document has no scene.
func previewRotation(doc *gltf.Document) (geom.Quaternion, bool) {
	if len(doc.Nodes) == 0 {
		return geom.Quaternion{}, false
	}
	n := uint32(0)
	if len(doc.Scenes) > 0 {
		s := uint32(0)
		if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
			s = *doc.Scene
		}
		if nodes := doc.Scenes[s].Nodes; len(nodes) > 0 && int(nodes[0]) < len(doc.Nodes) {
			n = nodes[0]
		}
	}
	return geom.Quaternion(doc.Nodes[n].Rotation), true
}

func savePreview(doc *gltf.Document, cfg *config.Config) error {
	q, ok := previewRotation(doc)
	if cfg.Preview.Output == "" || !ok {
		return nil
	}
	return preview.Save(preview.Render(q, cfg.Preview.Size), cfg.Preview.Output)
}

func convertModel(input, output string, cfg *config.Config, fn gltfutil.RotationFunc) error {
	doc, err := gltfutil.Load(input)
	if err != nil {
		return err
	}
	if *cfg.Nodes {
		log.Print("node rotations: ", gltfutil.ApplyToNodes(doc, fn))
	}
	if *cfg.Animations {
		n, err := gltfutil.ApplyToAnimations(doc, fn)
		if err != nil {
			return err
		}
		log.Print("animation rotations: ", n)
	}
	if cfg.Bake {
		log.Print("baked nodes: ", gltfutil.BakeRotations(doc))
	}
	if err := savePreview(doc, cfg); err != nil {
		return err
	}
	return saveDocument(doc, output, filepath.Dir(input))
}

func loadMotion(input string) (*mmd.Animation, error) {
	r, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return mmd.ParseVMD(r)
}

func convertMotion(input, output, model string, cfg *config.Config, fn gltfutil.RotationFunc) error {
	anim, err := loadMotion(input)
	if err != nil {
		return err
	}
	log.Println("Name: ", anim.Name)

	if model == "" {
		anim.TransformRotations(fn)
		w, err := os.Create(output)
		if err != nil {
			return err
		}
		defer w.Close()
		if err := mmd.WriteVMD(anim, w); err != nil {
			return err
		}
		return w.Close()
	}

	doc, err := gltfutil.Load(model)
	if err != nil {
		return err
	}
	a := converter.AddRotationAnimation(doc, anim, converter.NodesByName(doc), &converter.AnimationOption{
		FPS:      cfg.FPS,
		Rotation: fn,
	})
	if a == nil {
		log.Print("no bone of the motion matches a node of ", model)
	} else {
		log.Print("channels: ", len(a.Channels))
	}
	if cfg.Bake {
		log.Print("baked nodes: ", gltfutil.BakeRotations(doc))
	}
	return saveDocument(doc, output, filepath.Dir(model))
}
