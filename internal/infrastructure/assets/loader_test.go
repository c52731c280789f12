package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))))
}

func TestListImagePaths(t *testing.T) {
	t.Run("returns files in lexicographic order", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"frame_10.png", "frame_02.png", "frame_01.png"} {
			writePNG(t, filepath.Join(dir, name))
		}

		paths, err := listImagePaths(dir)

		require.NoError(t, err)
		require.Len(t, paths, 3)
		assert.Equal(t, filepath.Join(dir, "frame_01.png"), paths[0])
		assert.Equal(t, filepath.Join(dir, "frame_02.png"), paths[1])
		assert.Equal(t, filepath.Join(dir, "frame_10.png"), paths[2])
	})

	t.Run("skips subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writePNG(t, filepath.Join(dir, "frame.png"))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

		paths, err := listImagePaths(dir)

		require.NoError(t, err)
		assert.Len(t, paths, 1)
	})

	t.Run("fails on missing directory", func(t *testing.T) {
		paths, err := listImagePaths(filepath.Join(t.TempDir(), "missing"))

		assert.Error(t, err)
		assert.Nil(t, paths)
		assert.Contains(t, err.Error(), "failed to read asset directory")
	})
}

func TestDecodeImage(t *testing.T) {
	t.Run("decodes a PNG", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sprite.png")
		writePNG(t, path)

		img, err := decodeImage(path)

		require.NoError(t, err)
		assert.Equal(t, 2, img.Bounds().Dx())
		assert.Equal(t, 2, img.Bounds().Dy())
	})

	t.Run("fails on missing file with path in error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.png")

		img, err := decodeImage(path)

		assert.Error(t, err)
		assert.Nil(t, img)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("fails on invalid image data", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.png")
		require.NoError(t, os.WriteFile(path, []byte("not a png"), 0644))

		img, err := decodeImage(path)

		assert.Error(t, err)
		assert.Nil(t, img)
		assert.Contains(t, err.Error(), "failed to decode asset")
	})
}

func TestReadAsset(t *testing.T) {
	t.Run("reads file contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "menu.mp3")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfb}, 0644))

		data, err := readAsset(path)

		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xfb}, data)
	})

	t.Run("fails on missing file with path in error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.mp3")

		data, err := readAsset(path)

		assert.Error(t, err)
		assert.Nil(t, data)
		assert.Contains(t, err.Error(), path)
	})
}
