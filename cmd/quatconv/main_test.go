package main

import (
	"testing"

	"github.com/binzume/quatconv/config"
	"github.com/binzume/quatconv/geom"
	"github.com/qmuntal/gltf"
)

func TestParseQuaternion(t *testing.T) {
	q, err := parseQuaternion("0, 0.5,-1,1")
	if err != nil {
		t.Fatal(err)
	}
	if q != (geom.Quaternion{0, 0.5, -1, 1}) {
		t.Errorf("parseQuaternion\nhave %v\nwant (0, 0.5, -1, 1)", q)
	}
	for _, s := range []string{"", "1,2,3", "1,2,3,4,5", "1,2,x,4"} {
		if _, err := parseQuaternion(s); err == nil {
			t.Errorf("parseQuaternion(%q) should fail", s)
		}
	}
}

func TestDefaultOutputFile(t *testing.T) {
	for in, want := range map[string]string{
		"model.glb":      "model.out.glb",
		"dir/motion.vmd": "dir/motion.out.vmd",
		"a.b/scene.gltf": "a.b/scene.out.gltf",
	} {
		if out := defaultOutputFile(in); out != want {
			t.Errorf("defaultOutputFile(%q)\nhave %v\nwant %v", in, out, want)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", config.Flags{Conjugate: true})
	if err != nil {
		t.Fatal(err)
	}
	fn, err := cfg.Pipeline.Compile()
	if err != nil {
		t.Fatal(err)
	}
	q := geom.Quaternion{1, 2, 3, 4}
	fn(&q)
	if q != (geom.Quaternion{-1, -2, -3, 4}) {
		t.Errorf("pipeline\nhave %v\nwant (-1, -2, -3, 4)", q)
	}
	if cfg.FPS != 30 || !*cfg.Nodes {
		t.Error("defaults not applied", cfg)
	}
}

func TestPreviewRotation(t *testing.T) {
	doc := &gltf.Document{}
	if _, ok := previewRotation(doc); ok {
		t.Error("empty document has a rotation")
	}
	doc.Nodes = []*gltf.Node{
		{Name: "child", Rotation: [4]float32{0, 0, 0, 1}},
		{Name: "root", Rotation: [4]float32{0, 1, 0, 0}, Children: []uint32{0}},
	}
	if q, ok := previewRotation(doc); !ok || q != (geom.Quaternion{0, 0, 0, 1}) {
		t.Errorf("without scene\nhave %v\nwant node 0", q)
	}
	doc.Scenes = []*gltf.Scene{{Nodes: []uint32{1}}}
	if q, _ := previewRotation(doc); q != (geom.Quaternion{0, 1, 0, 0}) {
		t.Errorf("scene root\nhave %v\nwant (0, 1, 0, 0)", q)
	}
}
