package ndview

import "errors"

// ErrSingular is returned by Invert3 when the matrix has a zero
// determinant. Callers that cannot rule out singular input should
// check Det before relying on the inverse.
var ErrSingular = errors.New("ndview: singular matrix")

// Matrix is an n×m matrix of scalars in row-major order. Dimensions
// are fixed for the lifetime of the value; Resize builds a new matrix
// of different dimensions by truncating or zero-padding.
type Matrix[T Scalar[T]] struct {
	rows, cols int
	a          []T
}

// NewMatrix creates a zero matrix with the given dimensions.
func NewMatrix[T Scalar[T]](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("ndview: negative matrix dimension")
	}
	return Matrix[T]{rows: rows, cols: cols, a: make([]T, rows*cols)}
}

// MatrixFromRows creates a matrix from row slices. All rows must have
// the same length.
func MatrixFromRows[T Scalar[T]](rows ...[]T) Matrix[T] {
	if len(rows) == 0 {
		return Matrix[T]{}
	}
	cols := len(rows[0])
	m := NewMatrix[T](len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			panic("ndview: ragged matrix rows")
		}
		copy(m.a[i*cols:(i+1)*cols], r)
	}
	return m
}

// IdentityMatrix creates the d×d identity matrix.
func IdentityMatrix[T Scalar[T]](d int) Matrix[T] {
	m := NewMatrix[T](d, d)
	var zero T
	one := zero.FromInt(1)
	for i := 0; i < d; i++ {
		m.a[i*d+i] = one
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the element at row i, column j. Out-of-range access
// panics.
func (m Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("ndview: matrix index out of range")
	}
	return m.a[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m Matrix[T]) Set(i, j int, x T) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("ndview: matrix index out of range")
	}
	m.a[i*m.cols+j] = x
}

// Clone returns an independent copy of the matrix.
func (m Matrix[T]) Clone() Matrix[T] {
	out := Matrix[T]{rows: m.rows, cols: m.cols, a: make([]T, len(m.a))}
	copy(out.a, m.a)
	return out
}

// checkSameDims panics unless o has the same dimensions as m.
func (m Matrix[T]) checkSameDims(o Matrix[T]) {
	if m.rows != o.rows || m.cols != o.cols {
		panic("ndview: matrix dimension mismatch")
	}
}

// Add returns m + o element-wise.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	m.checkSameDims(o)
	out := NewMatrix[T](m.rows, m.cols)
	for i := range m.a {
		out.a[i] = m.a[i].Add(o.a[i])
	}
	return out
}

// Sub returns m - o element-wise.
func (m Matrix[T]) Sub(o Matrix[T]) Matrix[T] {
	m.checkSameDims(o)
	out := NewMatrix[T](m.rows, m.cols)
	for i := range m.a {
		out.a[i] = m.a[i].Sub(o.a[i])
	}
	return out
}

// Mul returns the matrix product m·o. The inner dimensions must
// agree: m is n×k, o is k×p, the result is n×p.
func (m Matrix[T]) Mul(o Matrix[T]) Matrix[T] {
	if m.cols != o.rows {
		panic("ndview: matrix product dimension mismatch")
	}
	out := NewMatrix[T](m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.At(i, k).Mul(o.At(k, j)))
			}
			out.a[i*out.cols+j] = sum
		}
	}
	return out
}

// MulVec returns the matrix-vector product m·v. The vector dimension
// must match the column count; the result has one component per row.
func (m Matrix[T]) MulVec(v Vec[T]) Vec[T] {
	if m.cols != len(v) {
		panic("ndview: matrix-vector dimension mismatch")
	}
	out := make(Vec[T], m.rows)
	for i := 0; i < m.rows; i++ {
		var sum T
		for k := 0; k < m.cols; k++ {
			sum = sum.Add(m.At(i, k).Mul(v[k]))
		}
		out[i] = sum
	}
	return out
}

// Transpose returns the m×n transpose of an n×m matrix.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := NewMatrix[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.a[j*out.cols+i] = m.At(i, j)
		}
	}
	return out
}

// Resize returns a matrix of the given dimensions, copying the
// overlapping region from m and zero-padding the rest.
func (m Matrix[T]) Resize(rows, cols int) Matrix[T] {
	out := NewMatrix[T](rows, cols)
	for i := 0; i < rows && i < m.rows; i++ {
		for j := 0; j < cols && j < m.cols; j++ {
			out.a[i*cols+j] = m.At(i, j)
		}
	}
	return out
}

// Minor returns the submatrix of m with row skipRow and column
// skipCol deleted.
func (m Matrix[T]) Minor(skipRow, skipCol int) Matrix[T] {
	out := NewMatrix[T](m.rows-1, m.cols-1)
	oi := 0
	for i := 0; i < m.rows; i++ {
		if i == skipRow {
			continue
		}
		oj := 0
		for j := 0; j < m.cols; j++ {
			if j == skipCol {
				continue
			}
			out.a[oi*out.cols+oj] = m.At(i, j)
			oj++
		}
		oi++
	}
	return out
}

// det2 is the 2×2 determinant of four scalars.
func det2[T Scalar[T]](a, b, c, d T) T {
	return a.Mul(d).Sub(c.Mul(b))
}

// Det returns the determinant of a square matrix. Orders 1 through 3
// use closed forms; larger matrices use Laplace cofactor expansion
// along the first row with alternating sign, positive at column 0.
func (m Matrix[T]) Det() T {
	if m.rows != m.cols {
		panic("ndview: determinant of non-square matrix")
	}
	var zero T
	switch m.rows {
	case 0:
		return zero.FromInt(1)
	case 1:
		return m.a[0]
	case 2:
		return det2(m.a[0], m.a[1], m.a[2], m.a[3])
	case 3:
		// Expansion along the first row.
		d := m.a[0].Mul(det2(m.a[4], m.a[5], m.a[7], m.a[8]))
		d = d.Sub(m.a[1].Mul(det2(m.a[3], m.a[5], m.a[6], m.a[8])))
		return d.Add(m.a[2].Mul(det2(m.a[3], m.a[4], m.a[6], m.a[7])))
	}
	det := zero
	for j := 0; j < m.cols; j++ {
		term := m.At(0, j).Mul(m.Minor(0, j).Det())
		if j%2 == 1 {
			term = term.Neg()
		}
		det = det.Add(term)
	}
	return det
}

// Invert3 returns the inverse of a 3×3 matrix using the adjugate
// over the determinant. Returns ErrSingular when the determinant is
// zero.
func (m Matrix[T]) Invert3() (Matrix[T], error) {
	if m.rows != 3 || m.cols != 3 {
		panic("ndview: Invert3 requires a 3×3 matrix")
	}
	det := m.Det()
	var zero T
	if det.Cmp(zero) == 0 {
		return Matrix[T]{}, ErrSingular
	}
	out := NewMatrix[T](3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cof := m.Minor(i, j).Det()
			if (i+j)%2 == 1 {
				cof = cof.Neg()
			}
			// Adjugate transposes the cofactor grid.
			out.a[j*3+i] = cof.Div(det)
		}
	}
	return out, nil
}

// IsIdentity reports whether every diagonal entry is the
// multiplicative identity and every off-diagonal entry the additive
// identity. Non-square matrices are never the identity.
func (m Matrix[T]) IsIdentity() bool {
	if m.rows != m.cols {
		return false
	}
	var zero T
	one := zero.FromInt(1)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			want := zero
			if i == j {
				want = one
			}
			if m.At(i, j).Cmp(want) != 0 {
				return false
			}
		}
	}
	return true
}
