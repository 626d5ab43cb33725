package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ddgtrans/matrix"
)

func TestNewIntMatrix_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewIntMatrix(0, 3, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewIntMatrix(3, -1, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestIntMatrix_AtSet(t *testing.T) {
	m, err := matrix.NewIntMatrix(2, 3, -1)
	require.NoError(t, err)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)

	require.NoError(t, m.Set(1, 2, 42))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
}

func TestIntMatrix_OutOfRange(t *testing.T) {
	m, err := matrix.NewIntMatrix(2, 2, 0)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(5, 5, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIntMatrix_GetPut(t *testing.T) {
	m, err := matrix.NewIntMatrix(3, 3, 0)
	require.NoError(t, err)
	m.Put(1, 1, 7)
	assert.Equal(t, int32(7), m.Get(1, 1))
}

func TestIntMatrix_Fill(t *testing.T) {
	m, err := matrix.NewIntMatrix(2, 2, 0)
	require.NoError(t, err)
	m.Fill(9)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(9), v)
}
