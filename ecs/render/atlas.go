package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trophydash/prefabs"
)

// Frame locates one atlas frame inside a sheet file.
type Frame struct {
	Sheet string
	Rect  image.Rectangle
}

// SliceAtlas computes the frame rectangles of every sheet in spec. size
// reports a sheet's pixel dimensions. Frames are cut row-major; a sheet
// without a frame size yields a single frame covering the whole image.
func SliceAtlas(spec prefabs.AtlasSpec, size func(file string) (int, int, error)) (map[string]Frame, error) {
	frames := make(map[string]Frame)
	for _, sheet := range spec.Sheets {
		w, h, err := size(sheet.File)
		if err != nil {
			return nil, fmt.Errorf("atlas: size %q: %w", sheet.File, err)
		}

		if sheet.FrameW <= 0 || sheet.FrameH <= 0 {
			if len(sheet.Frames) != 1 {
				return nil, fmt.Errorf("atlas: sheet %q without frame size must name exactly one frame", sheet.File)
			}
			if err := addFrame(frames, sheet.Frames[0], Frame{Sheet: sheet.File, Rect: image.Rect(0, 0, w, h)}); err != nil {
				return nil, err
			}
			continue
		}

		cols := w / sheet.FrameW
		rows := h / sheet.FrameH
		if cols == 0 || len(sheet.Frames) > cols*rows {
			return nil, fmt.Errorf("atlas: sheet %q (%dx%d) holds %d frames of %dx%d, %d named",
				sheet.File, w, h, cols*rows, sheet.FrameW, sheet.FrameH, len(sheet.Frames))
		}
		for i, name := range sheet.Frames {
			x := (i % cols) * sheet.FrameW
			y := (i / cols) * sheet.FrameH
			rect := image.Rect(x, y, x+sheet.FrameW, y+sheet.FrameH)
			if err := addFrame(frames, name, Frame{Sheet: sheet.File, Rect: rect}); err != nil {
				return nil, err
			}
		}
	}
	return frames, nil
}

func addFrame(frames map[string]Frame, name string, f Frame) error {
	if name == "" {
		return fmt.Errorf("atlas: sheet %q has an unnamed frame", f.Sheet)
	}
	if prev, ok := frames[name]; ok {
		return fmt.Errorf("atlas: frame %q defined in both %q and %q", name, prev.Sheet, f.Sheet)
	}
	frames[name] = f
	return nil
}

// LoadAtlas loads every sheet named by the embedded atlas spec and registers
// each frame as a sub-image under its identifier.
func LoadAtlas() error {
	spec, err := prefabs.LoadAtlasSpec()
	if err != nil {
		return err
	}

	frames, err := SliceAtlas(spec, func(file string) (int, int, error) {
		img, err := LoadSheet(file)
		if err != nil {
			return 0, 0, err
		}
		b := img.Bounds()
		return b.Dx(), b.Dy(), nil
	})
	if err != nil {
		return err
	}

	for name, f := range frames {
		sheet := GetImage(f.Sheet)
		if sheet == nil {
			return fmt.Errorf("atlas: sheet %q not loaded", f.Sheet)
		}
		RegisterImage(name, sheet.SubImage(f.Rect).(*ebiten.Image))
	}
	return nil
}
