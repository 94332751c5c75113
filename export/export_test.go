package export

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"subnetree-icons/palette"
)

func decodeICO(t *testing.T, path string) map[int]bool {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	frames, err := ico.DecodeAll(f)
	require.NoError(t, err)

	dims := make(map[int]bool)
	for _, frame := range frames {
		b := frame.Bounds()
		require.Equal(t, b.Dx(), b.Dy(), "non-square frame")
		dims[b.Dx()] = true
	}
	require.Len(t, frames, len(ICOSizes))
	return dims
}

func TestWriteICO(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subnetree.ico")

	require.NoError(t, WriteICO(path, palette.Dark))

	dims := decodeICO(t, path)
	for _, size := range ICOSizes {
		assert.True(t, dims[size], "missing %dpx frame", size)
	}
}

func TestWriteICOOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subnetree.ico")

	require.NoError(t, WriteICO(path, palette.Dark))
	require.NoError(t, WriteICO(path, palette.Light))
	decodeICO(t, path)
}

func TestWriteICOBadPath(t *testing.T) {
	err := WriteICO(filepath.Join(t.TempDir(), "no", "such", "dir", "x.ico"), palette.Dark)
	require.Error(t, err)
}

func TestWritePNGSet(t *testing.T) {
	dir := t.TempDir()

	paths, err := WritePNGSet(dir, "icon-dark", palette.Dark)
	require.NoError(t, err)
	require.Len(t, paths, len(PNGSizes))

	for i, size := range PNGSizes {
		want := filepath.Join(dir, fmt.Sprintf("icon-dark-%d.png", size))
		assert.Equal(t, want, paths[i])

		f, err := os.Open(want)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, size, cfg.Width)
		assert.Equal(t, size, cfg.Height)
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	in := Manifest{
		Assets: []Asset{
			{File: "subnetree.ico", Format: "ico", Theme: "dark", Sizes: ICOSizes},
			{File: "icon-dark-32.png", Format: "png", Theme: "dark", Sizes: []int{32}},
		},
	}
	require.NoError(t, WriteManifest(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out Manifest
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in.Assets, out.Assets)
}
