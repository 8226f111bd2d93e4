package arcade

import (
	"io/ioutil"
	"os"
	"testing"
)

func TestLoadROMsPlacesEachBankAtItsOffset(t *testing.T) {
	dir, err := ioutil.TempDir("", "invaders-roms")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	for i, name := range romFiles {
		data := make([]byte, romBankSize)
		for j := range data {
			data[j] = byte(i + 1)
		}
		if err := ioutil.WriteFile(dir+"/"+name, data, 0644); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
	}

	m := NewMachine(silentPlayer{})
	LoadROMs(m, dir)

	for i := range romFiles {
		base := uint16(i * romBankSize)
		if got := m.CPU.ReadMem(base); got != byte(i+1) {
			t.Errorf("bank %d byte 0 = 0x%02X, want 0x%02X", i, got, i+1)
		}
	}
}
