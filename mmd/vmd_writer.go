package mmd

import (
	"fmt"
	"io"
)

// WriteVMD writes anim as a .vmd stream with empty camera and light sections.
func WriteVMD(anim *Animation, w io.Writer) error {
	p := &baseWriter{w: w}

	p.writeString(vmdFormat, 30)
	p.writeString(anim.Name, 20)

	p.writeInt(len(anim.Bone))
	for _, s := range anim.Bone {
		p.writeString(s.Target, 15)
		p.writeInt(s.Frame)
		p.write(&s.Position)
		p.write(&s.Rotation)
		p.write(&s.Params)
	}

	p.writeInt(len(anim.Morph))
	for _, s := range anim.Morph {
		p.writeString(s.Target, 15)
		p.writeInt(s.Frame)
		p.write(&s.Value)
	}

	p.writeInt(0) // camera
	p.writeInt(0) // light

	if p.err != nil {
		return fmt.Errorf("mmd: write motion: %w", p.err)
	}
	return nil
}
