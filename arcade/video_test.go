package arcade

import "testing"

func TestBlitDimensions(t *testing.T) {
	m := NewMachine(silentPlayer{})
	img := m.Blit()

	b := img.Bounds()
	if b.Dx() != dispWidth || b.Dy() != dispHeight {
		t.Errorf("Blit() image = %dx%d, want %dx%d", b.Dx(), b.Dy(), dispWidth, dispHeight)
	}
}

func TestBlitLitPixelUsesBandColor(t *testing.T) {
	m := NewMachine(silentPlayer{})
	// Byte 0 covers column 0, bit 0: outX=0, outY=255 (bottom band, white).
	m.CPU.WriteMem(videoMemStart, 0x01)

	img := m.Blit()
	got := img.RGBAAt(0, 255)
	want := bandColor(0, 255)
	if got != want {
		t.Errorf("pixel (0,255) = %+v, want %+v", got, want)
	}
}

func TestBlitUnlitPixelIsBlack(t *testing.T) {
	m := NewMachine(silentPlayer{})
	m.CPU.WriteMem(videoMemStart, 0x00)

	img := m.Blit()
	got := img.RGBAAt(0, 255)
	if got != colorBlack {
		t.Errorf("pixel (0,255) = %+v, want black", got)
	}
}
