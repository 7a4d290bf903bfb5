package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soypat/wieringa/scene"
)

// WriteSCAD writes the scene tree as an OpenSCAD program. Prisms become
// linear_extrude of a polygon, transforms become multmatrix and color nodes
// become color calls. The tree structure is kept as is.
func WriteSCAD(w io.Writer, n *scene.Node) error {
	if len(scene.Flatten(n)) == 0 {
		return ErrEmptyModel
	}
	bw := bufio.NewWriter(w)
	sw := &scadWriter{w: bw}
	sw.node(n, 0)
	if sw.err != nil {
		return sw.err
	}
	return bw.Flush()
}

type scadWriter struct {
	w   *bufio.Writer
	err error
}

func (s *scadWriter) printf(depth int, format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, "%s"+format+"\n", append([]interface{}{strings.Repeat("  ", depth)}, args...)...)
}

func (s *scadWriter) node(n *scene.Node, depth int) {
	switch n.Kind() {
	case scene.KindPrism:
		var pts []string
		for _, v := range n.Outline() {
			pts = append(pts, "["+ff(v.X)+", "+ff(v.Y)+"]")
		}
		s.printf(depth, "linear_extrude(height=%s) polygon(points=[%s]);", ff(n.Height()), strings.Join(pts, ", "))
		return
	case scene.KindTransform:
		v := n.Matrix().Values()
		rows := make([]string, 4)
		for i := range rows {
			rows[i] = "[" + ff(v[4*i]) + ", " + ff(v[4*i+1]) + ", " + ff(v[4*i+2]) + ", " + ff(v[4*i+3]) + "]"
		}
		s.printf(depth, "multmatrix([%s]) {", strings.Join(rows, ", "))
	case scene.KindColor:
		if n.Color() == scene.Inherit {
			s.printf(depth, "union() {")
		} else {
			s.printf(depth, "color(%q) {", n.Color().String())
		}
	default:
		s.printf(depth, "union() {")
	}
	for _, c := range n.Children() {
		s.node(c, depth+1)
	}
	s.printf(depth, "}")
}

func ff(f float64) string {
	if f == 0 {
		return "0" // avoids -0
	}
	return strconv.FormatFloat(f, 'g', 12, 64)
}
