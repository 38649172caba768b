package render

import (
	"fmt"
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// PaletteSize is the number of colours in generated palettes.
const PaletteSize = 256

// FillGreyRGBA converts cell values in [0,1] into opaque grey RGBA pixels in
// buf. Values outside the range are clamped.
func FillGreyRGBA(buf []byte, cells []float64) {
	for i, c := range cells {
		v := level(c, 255)
		base := i * 4
		buf[base+0] = uint8(v)
		buf[base+1] = uint8(v)
		buf[base+2] = uint8(v)
		buf[base+3] = 255
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette that
// spans [0,1]. When the palette is empty the buffer is cleared to
// transparent black.
func FillPaletteRGBA(buf []byte, cells []float64, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[level(c, last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// HuePalette sweeps from dark blue for empty cells to bright red for full
// ones.
func HuePalette(n int) ([]color.RGBA, error) {
	if n < 2 {
		n = 2
	}
	palette := make([]color.RGBA, n)
	for i := range palette {
		t := float64(i) / float64(n-1)
		r, g, b, err := colorconv.HSVToRGB(240*(1-t), 1, t)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette, nil
}

// Palette returns the named palette; grey yields nil, which callers render
// with FillGreyRGBA.
func Palette(name string) ([]color.RGBA, error) {
	switch name {
	case "", "grey", "gray":
		return nil, nil
	case "hue":
		return HuePalette(PaletteSize)
	default:
		return nil, fmt.Errorf("unknown palette %q", name)
	}
}

// level maps c in [0,1] onto 0..top.
func level(c float64, top int) int {
	if !(c > 0) {
		return 0
	}
	if c >= 1 {
		return top
	}
	return int(c * float64(top))
}
