package arcade

import (
	"fmt"
	"io/ioutil"
	"log"
)

// The arcade board's four 2KiB ROMs, loaded back to back starting at 0x0000:
// invaders.h (code), invaders.g (code), invaders.f (code), invaders.e (code
// + the built-in test fixture at its tail). Spec §2 "Memory map".
const romBankSize = 0x0800

var romFiles = [4]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

// LoadROMs reads the four fixed-name ROM images from dir and writes them
// into memory starting at 0x0000, in board order. Grounded on the teacher's
// Bus.Load/LoadBytes file-loading idiom (ioutil.ReadFile + log.Fatalf on a
// missing file, or one that is not exactly one 2KiB bank) — the iNES cartridge-mapper machinery that originally
// surrounded it has no analogue here, since this board has no bank
// switching.
func LoadROMs(m *Machine, dir string) {
	for i, name := range romFiles {
		path := fmt.Sprintf("%s/%s", dir, name)
		data, err := ioutil.ReadFile(path)
		if err != nil {
			log.Fatalf("arcade: unable to read ROM file %s: %v", path, err)
		}
		if len(data) != romBankSize {
			log.Fatalf("arcade: ROM file %s is %d bytes, expected %d", path, len(data), romBankSize)
		}
		base := uint16(i * romBankSize)
		for j, b := range data {
			m.CPU.WriteMem(base+uint16(j), b)
		}
	}
}
