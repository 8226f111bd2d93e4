package arcade

import (
	"image"
	"image/color"
)

// Video memory layout: a 256x224 1bpp framebuffer starting at 0x2400 in the
// CPU's address space, stored column-major (spec §2 "Video memory"). The
// cabinet's monitor is mounted rotated 90 degrees counter-clockwise from the
// memory's native orientation; Blit bakes that rotation into its output
// addressing rather than drawing upright and transforming afterward.
const (
	videoMemStart = 0x2400
	videoBytes    = 0x1C00 // 256 * 224 / 8

	dispWidth  = 224 // output width, after rotation
	dispHeight = 256 // output height, after rotation
)

// Color overlay bands, grounded on
// original_source/game/hardware.c's display_draw thresholds (expressed
// there in pre-rotation Y/X terms; here in output-space Y/X since Blit
// writes directly into rotated coordinates).
var (
	colorWhite = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorRed   = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	colorGreen = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	colorBlack = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// bandColor returns the overlay color for output pixel (x, y), matching the
// bands the reference cabinet's green/red acetate strips produced.
func bandColor(x, y int) color.RGBA {
	switch {
	case y < 32:
		return colorWhite
	case y < 64:
		return colorRed
	case y < 184:
		return colorWhite
	case y < 240:
		return colorGreen
	case x < 16:
		return colorWhite
	case x < 134:
		return colorGreen
	default:
		return colorWhite
	}
}

// Blit renders the current video memory contents into an RGBA image sized
// dispWidth x dispHeight. Byte i holds 8 vertically-adjacent source pixels
// in column i/32 (0..223), bit k giving row (i%32)*8+k (0..255); the
// rotation is baked directly into the output addressing, matching
// display_draw's y/x formulas rather than a separate transform pass.
func (m *Machine) Blit() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, dispWidth, dispHeight))

	for i := 0; i < videoBytes; i++ {
		b := m.CPU.ReadMem(uint16(videoMemStart + i))

		outX := i / 32 // 0..223

		for k := 0; k < 8; k++ {
			outY := (dispHeight - 1) - ((i%32)*8 + k) // 255..0

			c := colorBlack
			if b&(1<<uint(k)) != 0 {
				c = bandColor(outX, outY)
			}
			img.SetRGBA(outX, outY, c)
		}
	}

	return img
}
