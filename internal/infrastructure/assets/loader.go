// Package assets loads the game's images, fonts and music from the assets
// directory at startup. The binary ships no assets; a missing or broken
// file fails the boot with an error naming the path.
package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// listImagePaths returns the files of a directory in lexicographic order.
// Load order matters: animation frames and background layers are numbered
// by file name.
func listImagePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// decodeImage decodes a PNG asset
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", path, err)
	}
	return img, nil
}

// readAsset reads a raw asset file (fonts, music)
func readAsset(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", path, err)
	}
	return data, nil
}
