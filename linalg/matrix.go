package linalg

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Mat3 is a 3x3 matrix stored in row-major order.
type Mat3[T Float] [9]T

// Ident3 returns the 3x3 identity matrix.
func Ident3[T Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element in row r, column c.
func (m Mat3[T]) At(r, c int) T {
	return m[3*r+c]
}

// Set assigns the element in row r, column c.
func (m *Mat3[T]) Set(r, c int, v T) {
	m[3*r+c] = v
}

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mul returns the matrix product m * n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	var p Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p[3*r+c] = m[3*r]*n[c] + m[3*r+1]*n[3+c] + m[3*r+2]*n[6+c]
		}
	}
	return p
}

// MulVec returns the matrix-vector product m * v, treating v as a column
// vector.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Dense converts m to a gonum dense matrix.
func (m Mat3[T]) Dense() *mat.Dense {
	data := make([]float64, 9)
	for i, v := range m {
		data[i] = float64(v)
	}
	return mat.NewDense(3, 3, data)
}

// Mat3FromDense converts a 3x3 gonum matrix to a Mat3. Matrices of any
// other dimension are rejected.
func Mat3FromDense[T Float](d mat.Matrix) (Mat3[T], error) {
	rows, cols := d.Dims()
	if rows != 3 || cols != 3 {
		return Mat3[T]{}, errors.Errorf("expected a 3x3 matrix, got %dx%d", rows, cols)
	}
	var m Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[3*r+c] = T(d.At(r, c))
		}
	}
	return m, nil
}

// Mat4 is a 4x4 matrix stored in row-major order.
type Mat4[T Float] [16]T

// Ident4 returns the 4x4 identity matrix.
func Ident4[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element in row r, column c.
func (m Mat4[T]) At(r, c int) T {
	return m[4*r+c]
}

// Set assigns the element in row r, column c.
func (m *Mat4[T]) Set(r, c int, v T) {
	m[4*r+c] = v
}

// Transpose returns the transpose of m.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mat4FromMat3 embeds n as the upper-left block of an otherwise identity
// 4x4 matrix.
func Mat4FromMat3[T Float](n Mat3[T]) Mat4[T] {
	m := Ident4[T]()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[4*r+c] = n[3*r+c]
		}
	}
	return m
}

// Mat3 returns the upper-left 3x3 block of m.
func (m Mat4[T]) Mat3() Mat3[T] {
	var n Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n[3*r+c] = m[4*r+c]
		}
	}
	return n
}

// Dense converts m to a gonum dense matrix.
func (m Mat4[T]) Dense() *mat.Dense {
	data := make([]float64, 16)
	for i, v := range m {
		data[i] = float64(v)
	}
	return mat.NewDense(4, 4, data)
}

// Mat4FromDense converts a 4x4 gonum matrix to a Mat4. Matrices of any
// other dimension are rejected.
func Mat4FromDense[T Float](d mat.Matrix) (Mat4[T], error) {
	rows, cols := d.Dims()
	if rows != 4 || cols != 4 {
		return Mat4[T]{}, errors.Errorf("expected a 4x4 matrix, got %dx%d", rows, cols)
	}
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] = T(d.At(r, c))
		}
	}
	return m, nil
}

// Mgl64 converts m to an mgl64 matrix, which is stored column-major.
func (m Mat4[T]) Mgl64() mgl64.Mat4 {
	var g mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g[4*c+r] = float64(m[4*r+c])
		}
	}
	return g
}

// Mat4FromMgl64 converts a column-major mgl64 matrix to a Mat4.
func Mat4FromMgl64[T Float](g mgl64.Mat4) Mat4[T] {
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] = T(g[4*c+r])
		}
	}
	return m
}

// Mgl32 converts m to an mgl32 matrix, which is stored column-major.
func (m Mat4[T]) Mgl32() mgl32.Mat4 {
	var g mgl32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g[4*c+r] = float32(m[4*r+c])
		}
	}
	return g
}

// Mat4FromMgl32 converts a column-major mgl32 matrix to a Mat4.
func Mat4FromMgl32[T Float](g mgl32.Mat4) Mat4[T] {
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[4*r+c] = T(g[4*c+r])
		}
	}
	return m
}
