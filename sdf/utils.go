package sdf

import "math"

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return radians * 180 / math.Pi
}
