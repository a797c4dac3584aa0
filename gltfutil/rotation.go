package gltfutil

import (
	"fmt"
	"log"

	"github.com/binzume/quatconv/geom"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/binary"
	"github.com/qmuntal/gltf/modeler"
)

// RotationFunc rewrites a rotation in place.
type RotationFunc func(q geom.Tuple4)

var identityMatrix = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// ApplyToNodes calls fn for the rotation of every node that is not
// transformed by a matrix and returns the number of rotations visited.
func ApplyToNodes(doc *gltf.Document, fn RotationFunc) int {
	n := 0
	for _, node := range doc.Nodes {
		if node.Matrix != identityMatrix && node.Matrix != ([16]float32{}) {
			continue
		}
		fn(geom.Buffer(node.Rotation[:]))
		n++
	}
	return n
}

// ApplyToAnimations calls fn for every keyframe of the samplers that drive a
// rotation channel and writes the results back into the buffers.
// Shared sampler outputs are visited once. Cubic spline samplers and
// non-float accessors are skipped.
func ApplyToAnimations(doc *gltf.Document, fn RotationFunc) (int, error) {
	done := map[uint32]bool{}
	n := 0
	for _, a := range doc.Animations {
		for _, ch := range a.Channels {
			if ch.Target.Path != gltf.TRSRotation || ch.Sampler == nil {
				continue
			}
			s := a.Samplers[*ch.Sampler]
			if s.Output == nil || done[*s.Output] {
				continue
			}
			done[*s.Output] = true
			if s.Interpolation == gltf.InterpolationCubicSpline {
				log.Printf("skip animation %q: cubic spline rotation", a.Name)
				continue
			}
			c, err := applyToAccessor(doc, *s.Output, fn)
			if err != nil {
				return n, err
			}
			n += c
		}
	}
	return n, nil
}

func applyToAccessor(doc *gltf.Document, index uint32, fn RotationFunc) (int, error) {
	acr := doc.Accessors[index]
	if acr.ComponentType != gltf.ComponentFloat || acr.Type != gltf.AccessorVec4 || acr.BufferView == nil {
		log.Printf("skip accessor %d: not a float vec4", index)
		return 0, nil
	}
	if acr.Sparse != nil {
		log.Printf("skip accessor %d: sparse", index)
		return 0, nil
	}

	data, err := modeler.ReadAccessor(doc, acr, nil)
	if err != nil {
		return 0, fmt.Errorf("gltfutil: read accessor %d: %w", index, err)
	}
	rotations, ok := data.([][4]float32)
	if !ok {
		return 0, fmt.Errorf("gltfutil: accessor %d: unexpected data %T", index, data)
	}
	for i := range rotations {
		fn(geom.Buffer(rotations[i][:]))
	}

	bufferView := doc.BufferViews[*acr.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	err = binary.Write(buffer.Data[bufferView.ByteOffset+acr.ByteOffset:], bufferView.ByteStride, rotations)
	if err != nil {
		return 0, fmt.Errorf("gltfutil: write accessor %d: %w", index, err)
	}
	return len(rotations), nil
}

// BakeRotations moves the rotation of plain transform nodes into their
// children: child.T = a⋅T⋅a*, child.R = a⋅child.R. Nodes with a mesh, skin,
// camera, non-unit scale or rotation animation keep their rotation, and so
// do nodes with a child whose rotation or translation is animated.
// It returns the number of nodes whose rotation was reset.
func BakeRotations(doc *gltf.Document) int {
	rotated := map[uint32]bool{}
	moved := map[uint32]bool{}
	for _, a := range doc.Animations {
		for _, ch := range a.Channels {
			if ch.Target.Node == nil {
				continue
			}
			switch ch.Target.Path {
			case gltf.TRSRotation:
				rotated[*ch.Target.Node] = true
			case gltf.TRSTranslation:
				moved[*ch.Target.Node] = true
			}
		}
	}
	animatedChild := func(node *gltf.Node) bool {
		for _, c := range node.Children {
			if rotated[c] || moved[c] {
				return true
			}
		}
		return false
	}

	baked := 0
	// parents first; a child can become bakeable once its parent is done
	for i := 0; i < len(doc.Nodes); i++ {
		fixed := 0
		for ni, node := range doc.Nodes {
			a := geom.Quaternion(node.Rotation)
			if a.IsIdentity() || len(node.Children) == 0 || rotated[uint32(ni)] || animatedChild(node) ||
				node.Mesh != nil || node.Skin != nil || node.Camera != nil || node.Scale != [3]float32{1, 1, 1} {
				continue
			}
			fixed++
			node.Rotation = geom.Identity()
			for _, c := range node.Children {
				child := doc.Nodes[c]
				a.ApplyTo(geom.NewVector3FromArray(child.Translation)).ToArray(child.Translation[:])
				geom.Mul(a, geom.Buffer(child.Rotation[:]), geom.Buffer(child.Rotation[:]))
			}
		}
		baked += fixed
		if fixed == 0 {
			break
		}
	}
	return baked
}
