package ppm_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/ppm"
)

func validHeader() string {
	return "P6\n# 2 2\n# 1\n# 3 1\n2 2\n255\n"
}

func TestReadValidProblem(t *testing.T) {
	body := bytes.Repeat([]byte{10, 20, 30}, 4) // 2x2 pixels
	data := append([]byte(validHeader()), body...)

	problem, err := ppm.Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, uint8(2), problem.Rows)
	require.Equal(t, uint8(2), problem.Cols)
	require.Equal(t, uint8(1), problem.SelectLimit)
	require.Equal(t, uint16(3), problem.SelectCost)
	require.Equal(t, uint16(1), problem.SwapCost)
	require.Equal(t, uint16(2), problem.Image.Width)
	require.Equal(t, uint16(2), problem.Image.Height)
	require.Len(t, problem.Image.Pixels, 4)
}

func TestReadBadMagic(t *testing.T) {
	data := []byte("P5\nignored\n")
	_, err := ppm.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ppm.ErrBadMagic)
}

func TestReadBadComment(t *testing.T) {
	data := []byte("P6\n2 2\n# 1\n# 3 1\n2 2\n255\n")
	_, err := ppm.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ppm.ErrBadComment)
}

func TestReadShortBody(t *testing.T) {
	data := append([]byte(validHeader()), []byte{1, 2, 3}...) // only 1 of 4 pixels
	_, err := ppm.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ppm.ErrShortBody)
}

func TestReadDimensionMismatchTrailingBytes(t *testing.T) {
	body := bytes.Repeat([]byte{10, 20, 30}, 4)
	data := append(append([]byte(validHeader()), body...), 9, 9, 9)
	_, err := ppm.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, ppm.ErrDimensionMismatch)
}
