package render

import (
	"errors"
	"io"
)

// RenderAll drains a Renderer and returns every triangle it produced.
// Like io.ReadAll, reaching io.EOF is not an error.
func RenderAll(r Renderer) ([]Triangle3, error) {
	model := make([]Triangle3, 0, 1<<12)
	chunk := make([]Triangle3, 1<<10)
	for {
		n, err := r.ReadTriangles(chunk)
		model = append(model, chunk[:n]...)
		if errors.Is(err, io.EOF) {
			return model, nil
		}
		if err != nil {
			return model, err
		}
	}
}

// triangle3Buffer is a FIFO of triangles waiting to be read.
type triangle3Buffer struct {
	pending []Triangle3
}

func (b *triangle3Buffer) Read(dst []Triangle3) int {
	n := copy(dst, b.pending)
	b.pending = b.pending[n:]
	return n
}

func (b *triangle3Buffer) Write(t []Triangle3) int {
	b.pending = append(b.pending, t...)
	return len(t)
}

func (b *triangle3Buffer) Len() int { return len(b.pending) }
