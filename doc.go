// Package wieringa builds a Wieringa roof: identical rhombic ceiling tiles
// folded in 3D so that, seen from above, they project onto a Penrose rhomb
// tiling. Folding a tile by Alpha about its short diagonal projects it onto a
// thick rhomb and folding it by Beta about its long diagonal projects it onto a
// thin rhomb.
//
// Geometry is returned as scene trees (package scene) that can be rendered
// with package render.
package wieringa
