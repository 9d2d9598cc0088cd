package geometry

// CSG combinators over signed distance fields. Union, intersection and
// subtraction all preserve the 1-Lipschitz property that makes sphere
// tracing step-safe.

// Union returns the distance to the union of two fields
func Union(a, b float64) float64 {
	return min(a, b)
}

// Intersect returns the distance to the intersection of two fields
func Intersect(a, b float64) float64 {
	return max(a, b)
}

// Subtract carves the second field out of the first
func Subtract(a, b float64) float64 {
	return max(a, -b)
}
