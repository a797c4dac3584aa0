package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/binzume/quatconv/config"
	"github.com/binzume/quatconv/geom"
	"github.com/binzume/quatconv/preview"
)

func defaultOutputFile(input string) string {
	ext := filepath.Ext(input)
	base := input[0 : len(input)-len(ext)]
	return base + ".out" + ext
}

func parseQuaternion(s string) (geom.Quaternion, error) {
	var q geom.Quaternion
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return q, fmt.Errorf("quaternion needs 4 comma separated values: %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return q, fmt.Errorf("quaternion component %d: %w", i, err)
		}
		q[i] = float32(v)
	}
	return q, nil
}

func loadConfig(path string, flags config.Flags) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	cfg.Resolve(flags)
	return cfg, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.(glb|gltf|vrm|vmd) [output]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -q x,y,z,w [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	quat := flag.String("q", "", "quaternion x,y,z,w to transform and print")
	confFile := flag.String("config", "", "pipeline config file (.yaml)")
	normalize := flag.Bool("normalize", false, "normalize rotations (appended to the pipeline)")
	conjugate := flag.Bool("conjugate", false, "conjugate rotations (appended to the pipeline)")
	bake := flag.Bool("bake", false, "move node rotations into children (.glb, .gltf)")
	previewFile := flag.String("preview", "", "write a preview of the resulting rotation (.png, .tga, .webp); for models, the first root node of the scene")
	size := flag.Int("size", 0, "preview size in pixels")
	model := flag.String("model", "", "model to attach a .vmd motion to (.glb, .gltf, .vrm)")
	flag.Parse()

	cfg, err := loadConfig(*confFile, config.Flags{
		Normalize: *normalize,
		Conjugate: *conjugate,
		Bake:      *bake,
		Preview:   *previewFile,
		Size:      *size,
	})
	if err != nil {
		log.Fatal(err)
	}
	fn, err := cfg.Pipeline.Compile()
	if err != nil {
		log.Fatal(err)
	}

	if *quat != "" {
		q, err := parseQuaternion(*quat)
		if err != nil {
			log.Fatal(err)
		}
		fn(&q)
		fmt.Println(q)
		log.Printf("len: %g", q.Len())
		if cfg.Preview.Output != "" {
			if err := preview.Save(preview.Render(q, cfg.Preview.Size), cfg.Preview.Output); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	input := flag.Arg(0)
	output := flag.Arg(1)
	if output == "" {
		output = defaultOutputFile(input)
		if *model != "" {
			output = defaultOutputFile(*model)
		}
	}

	switch strings.ToLower(filepath.Ext(input)) {
	case ".vmd":
		err = convertMotion(input, output, *model, cfg, fn)
	case ".glb", ".gltf", ".vrm":
		err = convertModel(input, output, cfg, fn)
	default:
		err = fmt.Errorf("Unsupported input type: %v", filepath.Ext(input))
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Print("out: ", output)
}
