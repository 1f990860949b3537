package render

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trophydash/assets"
)

var errEmptySheet = errors.New("render: empty sheet name")

// LoadSheet returns the embedded sprite sheet named file, decoding it on
// first use. Sheets are registered under their file name so atlas frames can
// be cut from them.
func LoadSheet(file string) (*ebiten.Image, error) {
	if file == "" {
		return nil, errEmptySheet
	}
	if img := GetImage(file); img != nil {
		return img, nil
	}
	img, err := assets.LoadImage(file)
	if err != nil {
		return nil, fmt.Errorf("render: load sheet %q: %w", file, err)
	}
	RegisterImage(file, img)
	return img, nil
}
