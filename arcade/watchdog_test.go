package arcade

import "testing"

func TestWatchdogCountsKicksAndDiscardsData(t *testing.T) {
	var w Watchdog
	w.Kick(0xFF)
	w.Kick(0x00)

	if w.Kicks != 2 {
		t.Errorf("Kicks = %d, want 2", w.Kicks)
	}
}
