package geom

// BoxVertices returns the eight corners of an axis-aligned box with the given
// side lengths and its lowermost corner at origin. Corners are ordered with x
// varying slowest and z fastest, so corner n is offset by
// (n>>2 & 1, n>>1 & 1, n & 1) sides from the origin.
func BoxVertices(sides, origin Vec) [8]Vec {
	var out [8]Vec
	for n := range out {
		out[n] = origin.Add(Vec{
			float64(n>>2&1) * sides[0],
			float64(n>>1&1) * sides[1],
			float64(n&1) * sides[2],
		})
	}
	return out
}

// CubeVertices returns the eight corners of a cube. See BoxVertices for the
// ordering.
func CubeVertices(edge float64, origin Vec) [8]Vec {
	return BoxVertices(Vec{edge, edge, edge}, origin)
}
