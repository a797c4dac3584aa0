package mmd

import (
	"bytes"
	"encoding/binary"
	"io"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

type baseParser struct {
	r   io.Reader
	err error
}

func (p *baseParser) read(v interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.err = binary.Read(p.r, binary.LittleEndian, v)
	return p.err
}

func (p *baseParser) readInt() int {
	var v uint32
	p.read(&v)
	return int(v)
}

func (p *baseParser) readString(size int) string {
	b := make([]byte, size)
	_ = p.read(b)
	utf8Data, _, _ := transform.Bytes(japanese.ShiftJIS.NewDecoder(), bytes.SplitN(b, []byte{0}, 2)[0])
	return string(utf8Data)
}

type baseWriter struct {
	w   io.Writer
	err error
}

func (p *baseWriter) write(v interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.err = binary.Write(p.w, binary.LittleEndian, v)
	return p.err
}

func (p *baseWriter) writeInt(v int) {
	vv := uint32(v)
	p.write(&vv)
}

// writeString writes s as Shift_JIS, zero padded to size bytes.
// Trailing characters that do not fit are dropped.
func (p *baseWriter) writeString(s string, size int) {
	b := make([]byte, size)
	r := []rune(s)
	for n := len(r); n >= 0; n-- {
		enc, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(string(r[:n])))
		if err == nil && len(enc) <= size {
			copy(b, enc)
			break
		}
	}
	p.write(b)
}
