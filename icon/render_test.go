package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subnetree-icons/palette"
)

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{16, 24, 32, 48, 64, 128, 256, 512} {
		img := Render(size, palette.Dark, true)
		require.Equal(t, size, img.Bounds().Dx())
		require.Equal(t, size, img.Bounds().Dy())
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(64, palette.Dark, true)
	b := Render(64, palette.Dark, true)
	require.Equal(t, a.Pix, b.Pix)

	c := Render(64, palette.Light, false)
	d := Render(64, palette.Light, false)
	require.Equal(t, c.Pix, d.Pix)
}

// Scene entries are gated by a single minimum size, so anything drawn at a
// smaller size must also be drawn at every larger one.
func TestSceneGatingMonotonic(t *testing.T) {
	sizes := []int{16, 24, 32, 48, 64, 128, 256}
	for i, small := range sizes[:len(sizes)-1] {
		large := sizes[i+1]
		for _, sh := range scene {
			if small >= sh.MinSize {
				assert.GreaterOrEqual(t, large, sh.MinSize,
					"element drawn at %d missing at %d", small, large)
			}
		}
	}
}

func TestSceneBaseLayerAt16(t *testing.T) {
	// Trunk, two branches, four leaf branches, four leaf nodes, two
	// gateways, junction, root: 15 base elements, nothing else.
	base := 0
	for _, sh := range scene {
		if sh.MinSize <= 16 {
			base++
			assert.Zero(t, sh.MinSize)
		}
	}
	assert.Equal(t, 15, base)
	assert.Equal(t, len(scene)-7, base) // ring, glow, link, 2 sat lines, 2 sat nodes
}

// The outer ring's topmost pixel must be drawn from size 64 up and must be
// untouched background below that.
func TestOuterRingThreshold(t *testing.T) {
	ringTop := func(size int) (int, int) {
		s := float64(size) / designSize
		return int(128 * s), int(128*s) - int(114*s)
	}

	for _, size := range []int{64, 128, 256} {
		img := Render(size, palette.Dark, false)
		x, y := ringTop(size)
		assert.NotEqual(t, palette.Dark.BG, img.NRGBAAt(x, y),
			"ring missing at size %d", size)
	}
	for _, size := range []int{16, 24} {
		img := Render(size, palette.Dark, false)
		x, y := ringTop(size)
		assert.Equal(t, palette.Dark.BG, img.NRGBAAt(x, y),
			"unexpected detail at size %d", size)
	}
}

func TestRoundedBackgroundCorners(t *testing.T) {
	img := Render(256, palette.Dark, true)
	assert.Zero(t, img.NRGBAAt(0, 0).A)
	assert.Zero(t, img.NRGBAAt(255, 0).A)
	assert.Zero(t, img.NRGBAAt(0, 255).A)
	assert.Zero(t, img.NRGBAAt(255, 255).A)
	assert.EqualValues(t, 255, img.NRGBAAt(128, 128).A)
}

func TestSquareBackgroundCorners(t *testing.T) {
	img := Render(16, palette.Dark, false)
	assert.Equal(t, palette.Dark.BG, img.NRGBAAt(0, 0))
	assert.Equal(t, palette.Dark.BG, img.NRGBAAt(15, 15))
}

// The root server node sits at design (128, 200); at full size its inner
// dot is a solid accent-green disc.
func TestRootNodeVisible(t *testing.T) {
	img := Render(256, palette.Dark, true)
	assert.Equal(t, palette.Dark.Green, img.NRGBAAt(128, 200))

	img = Render(256, palette.Light, true)
	assert.Equal(t, palette.Light.Green, img.NRGBAAt(128, 200))
}
