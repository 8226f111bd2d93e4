package arcade

// Watchdog models port 6 (OUT watchdog): the real board resets itself if
// this port goes unwritten for too long, which this emulator has no reason
// to enforce — every write is simply discarded (spec §2 "Watchdog").
type Watchdog struct {
	Kicks uint64
}

// Kick records that the ROM poked the watchdog. It has no other effect;
// exposed only so a host's debug panel can show the kick count is
// advancing (a silent watchdog is how a crashed ROM looks from outside).
func (w *Watchdog) Kick(byte) {
	w.Kicks++
}
