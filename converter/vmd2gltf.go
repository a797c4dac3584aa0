package converter

import (
	"log"
	"sort"

	"github.com/binzume/quatconv/geom"
	"github.com/binzume/quatconv/gltfutil"
	"github.com/binzume/quatconv/mmd"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

type AnimationOption struct {
	FPS           float32 // 30 when zero
	PositionScale float32 // 80 * 0.001 when zero
	// Rotation is applied to every sample after the axis conversion.
	Rotation gltfutil.RotationFunc
}

func keysEquals(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// NodesByName maps node names to indices. The first node wins on duplicates.
func NodesByName(doc *gltf.Document) map[string]uint32 {
	r := map[string]uint32{}
	for i := len(doc.Nodes) - 1; i >= 0; i-- {
		r[doc.Nodes[i].Name] = uint32(i)
	}
	return r
}

// AddRotationAnimation converts the bone samples of anim into glTF rotation
// and translation channels. MMD is left-handed, so samples are mirrored on Z.
// Bones without a node in nodeByName are skipped. Returns nil when no
// channel was produced.
func AddRotationAnimation(doc *gltf.Document, anim *mmd.Animation, nodeByName map[string]uint32, opt *AnimationOption) *gltf.Animation {
	if opt == nil {
		opt = &AnimationOption{}
	}
	fps := opt.FPS
	if fps == 0 {
		fps = 30
	}
	scale := opt.PositionScale
	if scale == 0 {
		scale = 80 * 0.001
	}

	channels := anim.GetRotationChannels()
	targets := make([]string, 0, len(channels))
	for name := range channels {
		targets = append(targets, name)
	}
	sort.Strings(targets)

	a := &gltf.Animation{Name: anim.Name}
	var prevFrames []uint32
	var prevKeysAcc uint32
	for _, name := range targets {
		channel := channels[name]
		n, ok := nodeByName[name]
		if !ok {
			log.Println("skip bone:", name)
			continue
		}

		// written on first use, shared with the previous bone when frames match
		keysAcc := func() uint32 {
			if prevFrames == nil || !keysEquals(channel.Frames, prevFrames) {
				var keys []float32
				for _, k := range channel.Frames {
					keys = append(keys, float32(k)/fps)
				}
				prevKeysAcc = modeler.WriteAccessor(doc, gltf.TargetNone, keys)
				prevFrames = channel.Frames
			}
			return prevKeysAcc
		}

		rotate := false
		rotations := make([][4]float32, len(channel.Samples))
		for i, s := range channel.Samples {
			r := geom.Mirror(s, 2, geom.Buffer(rotations[i][:]))
			if opt.Rotation != nil {
				opt.Rotation(r)
			}
			if rotations[i] != [4]float32{0, 0, 0, 1} {
				rotate = true
			}
		}
		if rotate {
			samplesAcc := modeler.WriteTangent(doc, rotations)
			a.Samplers = append(a.Samplers, &gltf.AnimationSampler{
				Input:         gltf.Index(keysAcc()),
				Output:        gltf.Index(samplesAcc),
				Interpolation: gltf.InterpolationLinear,
			})
			a.Channels = append(a.Channels, &gltf.Channel{
				Sampler: gltf.Index(uint32(len(a.Samplers) - 1)),
				Target: gltf.ChannelTarget{
					Node: gltf.Index(n),
					Path: gltf.TRSRotation,
				},
			})
		}

		translate := false
		base := doc.Nodes[n].Translation
		translations := make([][3]float32, len(channel.Positions))
		for i, p := range channel.Positions {
			if *p != (geom.Vector3{}) {
				translate = true
			}
			translations[i] = [3]float32{base[0] + p.X*scale, base[1] + p.Y*scale, base[2] - p.Z*scale}
		}
		if translate {
			samplesAcc := modeler.WritePosition(doc, translations)
			a.Samplers = append(a.Samplers, &gltf.AnimationSampler{
				Input:         gltf.Index(keysAcc()),
				Output:        gltf.Index(samplesAcc),
				Interpolation: gltf.InterpolationLinear,
			})
			a.Channels = append(a.Channels, &gltf.Channel{
				Sampler: gltf.Index(uint32(len(a.Samplers) - 1)),
				Target: gltf.ChannelTarget{
					Node: gltf.Index(n),
					Path: gltf.TRSTranslation,
				},
			})
		}
	}

	if len(a.Channels) == 0 {
		return nil
	}
	doc.Animations = append(doc.Animations, a)
	return a
}
