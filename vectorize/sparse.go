// Package vectorize turns named features into numeric vectors with a fixed column layout.
package vectorize

// Vector is a sparse row. Indices are sorted and unique.
type Vector struct {
	Indices []int
	Values  []float64
}

// Dot is the inner product of two sparse vectors.
func (v Vector) Dot(u Vector) float64 {
	var (
		sum  float64
		i, j int
	)
	for i < len(v.Indices) && j < len(u.Indices) {
		switch {
		case v.Indices[i] == u.Indices[j]:
			sum += v.Values[i] * u.Values[j]
			i++
			j++
		case v.Indices[i] < u.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// DotDense is the inner product with a dense vector at least as long as the largest index.
func (v Vector) DotDense(d []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * d[idx]
	}
	return sum
}

// SquaredNorm is the squared L2 norm.
func (v Vector) SquaredNorm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return sum
}

// Matrix is a list of sparse rows that share a column layout.
type Matrix struct {
	Rows []Vector
	Cols int
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) {
	return len(m.Rows), m.Cols
}
