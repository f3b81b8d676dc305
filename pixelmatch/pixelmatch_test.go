package pixelmatch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/fragment"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/pixelmatch"
)

// buildUniquePixels fills a width x height buffer where every single pixel
// has a distinct color, so any mismatched edge pairing scores strictly
// worse than the one true adjacency and the reconstruction has a unique
// answer to check against.
func buildUniquePixels(width, height int) []basis.Color {
	pixels := make([]basis.Color, width*height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[i] = basis.Color{R: uint8(i % 256), G: uint8((i * 7) % 256), B: uint8((i * 13) % 256)}
			i++
		}
	}
	return pixels
}

func TestResolveReconstructsOriginalLayoutRegardlessOfInputOrder(t *testing.T) {
	pixels := buildUniquePixels(8, 8)
	g := grid.New(4, 4)
	frags := fragment.NewAll(pixels, 8, 8, 4, 4)
	require.Len(t, frags, 16)

	shuffled := append([]fragment.Fragment(nil), frags...)
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	result, rootPos := pixelmatch.Resolve(shuffled, g, nil)
	require.Equal(t, grid.Pos{X: 0, Y: 0}, result.Get(rootPos).Pos)

	for _, p := range g.AllPos().Collect() {
		f := result.Get(p)
		require.Equal(t, p, f.Pos, "fragment at %v should be the one originally from %v", p, p)
		require.Equal(t, basis.R0, f.Rot, "no rotation was applied, none should be needed to reconstruct")
	}
}

func TestResolvePanicsWithoutARootFragment(t *testing.T) {
	pixels := buildUniquePixels(4, 4)
	g := grid.New(2, 2)
	frags := fragment.NewAll(pixels, 4, 4, 2, 2)
	// drop the fragment originally at (0,0).
	var withoutRoot []fragment.Fragment
	for _, f := range frags {
		if f.Pos != (grid.Pos{X: 0, Y: 0}) {
			withoutRoot = append(withoutRoot, f)
		}
	}
	require.Panics(t, func() {
		pixelmatch.Resolve(withoutRoot, g, nil)
	})
}
