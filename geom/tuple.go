package geom

// Tuple4Reader reads an ordered 4-tuple. V0..V3 map to x, y, z, w.
type Tuple4Reader interface {
	V0() Element
	V1() Element
	V2() Element
	V3() Element
}

// Tuple4Writer receives all four components in a single call.
type Tuple4Writer interface {
	Set(x, y, z, w Element)
}

type Tuple4 interface {
	Tuple4Reader
	Tuple4Writer
}

// Buffer adapts a raw component slice. Only the first four elements are used.
type Buffer []Element

func (b Buffer) V0() Element { return b[0] }
func (b Buffer) V1() Element { return b[1] }
func (b Buffer) V2() Element { return b[2] }
func (b Buffer) V3() Element { return b[3] }

func (b Buffer) Set(x, y, z, w Element) {
	_ = b[3]
	b[0], b[1], b[2], b[3] = x, y, z, w
}

// Factory forwards result components to New and keeps what it returns in Value.
type Factory[T any] struct {
	New   func(x, y, z, w Element) T
	Value T
}

// Make returns a Factory sink for fn.
func Make[T any](fn func(x, y, z, w Element) T) *Factory[T] {
	return &Factory[T]{New: fn}
}

func (f *Factory[T]) Set(x, y, z, w Element) {
	f.Value = f.New(x, y, z, w)
}

func load(q Tuple4Reader) (x, y, z, w Element) {
	return q.V0(), q.V1(), q.V2(), q.V3()
}
