package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/go8080/invaders/arcade"
)

// Keyboard bindings, grounded on the teacher's Controller (a
// pixelgl.Button map keyed by logical button, polled once per frame via
// JustPressed/JustReleased) — generalized from the NES pad's 8 buttons to
// the cabinet's per-player coin/start/shot/move switches.
const (
	keyCredit int = iota
	keyStart1P
	keyStart2P
	keyP1Shot
	keyP1Left
	keyP1Right
	keyP2Shot
	keyP2Left
	keyP2Right
)

var controllerKeys = map[int]pixelgl.Button{
	keyCredit:  pixelgl.KeyC,
	keyStart1P: pixelgl.KeyEnter,
	keyStart2P: pixelgl.KeyP,
	keyP1Shot:  pixelgl.KeySpace,
	keyP1Left:  pixelgl.KeyLeft,
	keyP1Right: pixelgl.KeyRight,
	keyP2Shot:  pixelgl.KeySpace,
	keyP2Left:  pixelgl.KeyLeft,
	keyP2Right: pixelgl.KeyRight,
}

// updateControllerInput polls the window for newly pressed/released keys
// and forwards them to the machine's input latches.
func updateControllerInput(win *pixelgl.Window, in *arcade.InputLatches) {
	apply := func(key int, down bool) {
		switch key {
		case keyCredit:
			in.SetCredit(down)
		case keyStart1P:
			in.SetStart1P(down)
		case keyStart2P:
			in.SetStart2P(down)
		case keyP1Shot:
			in.SetPlayer1Shot(down)
		case keyP1Left:
			in.SetPlayer1Left(down)
		case keyP1Right:
			in.SetPlayer1Right(down)
		case keyP2Shot:
			in.SetPlayer2Shot(down)
		case keyP2Left:
			in.SetPlayer2Left(down)
		case keyP2Right:
			in.SetPlayer2Right(down)
		}
	}

	for key, btn := range controllerKeys {
		if win.JustPressed(btn) {
			apply(key, true)
		}
		if win.JustReleased(btn) {
			apply(key, false)
		}
	}
}
