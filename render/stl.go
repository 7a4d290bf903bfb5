package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/soypat/wieringa/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// Binary STL layout: 80 byte header, uint32 triangle count, then one
// 50 byte record per triangle holding normal, three vertices and a
// uint16 attribute, all little endian.
const (
	stlHeaderSize = 84
	stlRecordSize = 50
	// records staged per Renderer read.
	stlBatch = 1 << 10
	// ReadSTL gives up after this many triangles disagree with their normal.
	maxNormalMismatches = 10_000
)

var errNormalMismatch = errors.New("stored normal disagrees with vertex winding")

// CreateSTL streams the triangles of a Renderer to a binary STL file at path.
// Triangle colors are stored in the attribute bytes (VisCAM/SolidView convention).
func CreateSTL(path string, r Renderer) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	// The count is only known at the end; leave room for the header.
	if _, err = fp.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return err
	}
	n, err := io.CopyBuffer(fp, &stlStream{r: r}, make([]byte, stlRecordSize*stlBatch))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEmptyModel
	}
	if _, err = fp.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err = fp.Write(stlHeader(int(n / stlRecordSize))); err != nil {
		return err
	}
	return fp.Close()
}

// WriteSTL writes model triangles to a writer in binary STL format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return ErrEmptyModel
	}
	if _, err := w.Write(stlHeader(len(model))); err != nil {
		return err
	}
	var rec [stlRecordSize]byte
	for i := range model {
		encodeSTL(rec[:], &model[i])
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSTL reads a binary STL. Triangles whose stored normal disagrees with the
// vertex winding are still returned along with a non-nil error.
func ReadSTL(r io.Reader) ([]Triangle3, error) {
	var head [stlHeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	count := int(binary.LittleEndian.Uint32(head[80:]))
	if count == 0 {
		return nil, ErrEmptyModel
	}
	var (
		rec        [stlRecordSize]byte
		model      []Triangle3
		mismatches int
		mismatch   error
	)
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		t, err := decodeSTL(rec[:])
		switch {
		case errors.Is(err, errNormalMismatch):
			mismatches++
			if mismatches > maxNormalMismatches {
				return model, fmt.Errorf("got too many normal vector mismatches (%d)", mismatches)
			}
			mismatch = err
		case err != nil:
			return nil, fmt.Errorf("STL triangle %d: %w", i, err)
		}
		model = append(model, t)
	}
	return model, mismatch
}

// stlStream adapts a Renderer to an io.Reader of STL records.
type stlStream struct {
	r   Renderer
	buf [stlBatch]Triangle3
}

func (s *stlStream) Read(b []byte) (int, error) {
	nmax := len(b) / stlRecordSize
	if nmax > len(s.buf) {
		nmax = len(s.buf)
	}
	if nmax == 0 {
		return 0, errors.New("STL stream needs room for at least one 50 byte record")
	}
	nt, err := s.r.ReadTriangles(s.buf[:nmax])
	if nt > nmax {
		panic("bug: ReadTriangles read more triangles than available in buffer")
	}
	for i := range s.buf[:nt] {
		encodeSTL(b[i*stlRecordSize:], &s.buf[i])
	}
	return nt * stlRecordSize, err
}

func stlHeader(count int) []byte {
	head := make([]byte, stlHeaderSize)
	binary.LittleEndian.PutUint32(head[80:], uint32(count))
	return head
}

func encodeSTL(b []byte, t *Triangle3) {
	_ = b[stlRecordSize-1]
	putVec(b, t.Normal())
	for i, v := range t.V {
		putVec(b[12*(i+1):], v)
	}
	binary.LittleEndian.PutUint16(b[48:], colorAttribute(t.Color))
}

func decodeSTL(b []byte) (Triangle3, error) {
	_ = b[stlRecordSize-1]
	var raw [4][3]float32
	for i := range raw {
		for j := range raw[i] {
			raw[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(b[12*i+4*j:]))
			if math32.IsNaN(raw[i][j]) || math32.IsInf(raw[i][j], 0) {
				return Triangle3{}, errors.New("inf/NaN in STL triangle")
			}
		}
	}
	t := Triangle3{
		V:     [3]r3.Vec{vec32(raw[1]), vec32(raw[2]), vec32(raw[3])},
		Color: attributeColor(binary.LittleEndian.Uint16(b[48:])),
	}
	const (
		coincident = 1e-12
		normTol    = 5e-2
	)
	for i := range t.V {
		if r3.Norm(r3.Sub(t.V[i], t.V[(i+1)%3])) <= coincident {
			return t, errors.New("triangle is degenerate")
		}
	}
	n := t.Normal()
	stored := vec32(raw[0])
	if math.Abs(n.X-stored.X) > normTol || math.Abs(n.Y-stored.Y) > normTol || math.Abs(n.Z-stored.Z) > normTol {
		return t, errNormalMismatch
	}
	return t, nil
}

func putVec(b []byte, v r3.Vec) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

func vec32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

// STL attribute color: bit 15 set when valid, then 5 bits each of red, green, blue.
const stlColorValid = 1 << 15

func colorAttribute(c scene.Color) uint16 {
	if c == scene.Inherit {
		return 0
	}
	r, g, b := hexRGB(c.Hex())
	return stlColorValid | uint16(r>>3)<<10 | uint16(g>>3)<<5 | uint16(b>>3)
}

func attributeColor(attr uint16) scene.Color {
	if attr&stlColorValid == 0 {
		return scene.Inherit
	}
	for _, c := range []scene.Color{scene.Green, scene.Blue, scene.Red} {
		if colorAttribute(c) == attr {
			return c
		}
	}
	return scene.Inherit
}

// hexRGB parses a #RRGGBB color.
func hexRGB(hex string) (r, g, b uint8) {
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		panic("bad hex color " + hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
