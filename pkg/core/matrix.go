package core

import (
	"errors"
	"fmt"
)

// Matrix is a rectangular block of samples: R rows (observations) by
// C columns (dimensions), stored row-major.
type Matrix struct {
	R, C int
	Data []float64
}

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromSlice creates a Matrix from a nested slice (copies the data).
// Every row must have the same length.
func FromSlice(a [][]float64) (*Matrix, error) {
	r := len(a)
	if r == 0 {
		return nil, errors.New("core: FromSlice needs at least one row")
	}

	c := len(a[0])
	m := NewMatrix(r, c)
	k := 0
	for i := 0; i < r; i++ {
		if len(a[i]) != c {
			return nil, fmt.Errorf("core: row %d has %d values, want %d", i, len(a[i]), c)
		}
		for j := 0; j < c; j++ {
			m.Data[k] = a[i][j]
			k++
		}
	}
	return m, nil
}

// FromVector promotes a 1-D sequence of observations to a single-column
// matrix. This is the normalization step every public operation relies on:
// callers with scalar-valued samples convert once, here, instead of each
// estimator special-casing vector input.
func FromVector(x []float64) *Matrix {
	m := NewMatrix(len(x), 1)
	copy(m.Data, x)
	return m
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.C+j] = v }

// Row returns row i as a view into the matrix data. Callers must not
// modify it.
func (m *Matrix) Row(i int) []float64 { return m.Data[i*m.C : (i+1)*m.C] }

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	v := make([]float64, m.R)
	for i := 0; i < m.R; i++ {
		v[i] = m.Data[i*m.C+j]
	}
	return v
}

// Clone deep-copies the matrix.
func (m *Matrix) Clone() *Matrix {
	n := &Matrix{R: m.R, C: m.C, Data: make([]float64, len(m.Data))}
	copy(n.Data, m.Data)
	return n
}

// ConcatColumns joins a and b side by side into an R x (a.C + b.C) matrix.
// Both inputs must have the same number of rows.
func ConcatColumns(a, b *Matrix) (*Matrix, error) {
	if a.R != b.R {
		return nil, fmt.Errorf("core: cannot join %d rows with %d rows", a.R, b.R)
	}
	m := NewMatrix(a.R, a.C+b.C)
	for i := 0; i < a.R; i++ {
		copy(m.Data[i*m.C:], a.Data[i*a.C:(i+1)*a.C])
		copy(m.Data[i*m.C+a.C:], b.Data[i*b.C:(i+1)*b.C])
	}
	return m, nil
}
