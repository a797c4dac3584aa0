package mmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/binzume/quatconv/geom"
)

const vmdFormat = "Vocaloid Motion Data 0002"

type Animation struct {
	Name  string
	Bone  []*AnimationBoneSample
	Morph []*AnimationMorphSample
}

type AnimationBoneSample struct {
	Target   string
	Frame    int
	Position geom.Vector3
	Rotation geom.Vector4
	Params   [64]byte
}

type AnimationMorphSample struct {
	Target string
	Frame  int
	Value  float32
}

type RotationChannel struct {
	Target    string
	Frames    []uint32
	Positions []*geom.Vector3
	Samples   []*geom.Vector4
}

// GetRotationChannels groups bone samples by target, ordered by frame.
func (a *Animation) GetRotationChannels() map[string]*RotationChannel {
	sort.SliceStable(a.Bone, func(i, j int) bool { return a.Bone[i].Frame < a.Bone[j].Frame })

	r := map[string]*RotationChannel{}
	for _, s := range a.Bone {
		ch, ok := r[s.Target]
		if !ok {
			ch = &RotationChannel{Target: s.Target}
			r[s.Target] = ch
		}
		ch.Frames = append(ch.Frames, uint32(s.Frame))
		ch.Positions = append(ch.Positions, &s.Position)
		ch.Samples = append(ch.Samples, &s.Rotation)
	}
	return r
}

// TransformRotations calls f with every bone rotation. f may modify it in place.
func (a *Animation) TransformRotations(f func(q geom.Tuple4)) {
	for _, s := range a.Bone {
		f(&s.Rotation)
	}
}

// VMDParser is parser for .vmd animation.
type VMDParser struct {
	baseParser
}

// NewVMDParser returns new parser.
func NewVMDParser(r io.Reader) *VMDParser {
	return &VMDParser{baseParser: baseParser{r: r}}
}

// Parse animation data. Camera, light and later sections are ignored.
func (p *VMDParser) Parse() (*Animation, error) {
	var anim Animation

	formatName := p.readString(30)
	if p.err != nil {
		return nil, fmt.Errorf("mmd: read header: %w", p.err)
	}
	if formatName != vmdFormat {
		return nil, fmt.Errorf("mmd: format error: %q != %q", formatName, vmdFormat)
	}

	anim.Name = p.readString(20)

	frames := p.readInt()
	for i := 0; i < frames && p.err == nil; i++ {
		sample := &AnimationBoneSample{}
		sample.Target = p.readString(15)
		sample.Frame = p.readInt()
		p.read(&sample.Position)
		p.read(&sample.Rotation)
		if p.read(&sample.Params) != nil {
			break
		}
		anim.Bone = append(anim.Bone, sample)
	}
	if p.err != nil {
		return nil, fmt.Errorf("mmd: read motion: %w", p.err)
	}

	frames = p.readInt()
	if p.err == io.EOF {
		// motion without a morph section
		return &anim, nil
	}
	for i := 0; i < frames && p.err == nil; i++ {
		sample := &AnimationMorphSample{}
		sample.Target = p.readString(15)
		sample.Frame = p.readInt()
		if p.read(&sample.Value) != nil {
			break
		}
		anim.Morph = append(anim.Morph, sample)
	}

	if p.err != nil {
		return nil, fmt.Errorf("mmd: read motion: %w", p.err)
	}
	return &anim, nil
}

// ParseVMD parses a .vmd stream.
func ParseVMD(r io.Reader) (*Animation, error) {
	return NewVMDParser(r).Parse()
}
