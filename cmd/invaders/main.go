package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/go8080/invaders/arcade"
)

// Command line flags, grounded on the teacher's flag.BoolVar-based
// parseFlags, generalized from two debug toggles to the arcade machine's
// ROM location, trace/debug toggles, audio mute, and display scale.
var (
	flagROMDir string
	flagTrace  string
	flagDebug  bool
	flagMute   bool
	flagScale  float64
)

func parseFlags() {
	flag.StringVar(&flagROMDir, "rom", "./roms", "directory containing invaders.h/.g/.f/.e")
	flag.StringVar(&flagTrace, "trace", "", "directory to write a per-instruction trace log to (disabled if empty)")
	flag.BoolVar(&flagDebug, "debug", false, "enable debug panel")
	flag.BoolVar(&flagMute, "mute", false, "disable audio output")
	flag.Float64Var(&flagScale, "scale", 3, "window scale factor")

	flag.Parse()
}

const (
	dispW = 224.0
	dispH = 256.0
	fps   = 60
)

func main() {
	parseFlags()

	var player arcade.Player
	if flagMute {
		player = mutePlayer{}
	} else {
		player = newOtoPlayer(flagROMDir + "/sounds")
	}

	fmt.Println("Starting arcade machine...")
	machine := arcade.NewMachine(player)

	if flagTrace != "" {
		machine.EnableTrace(flagTrace)
	}

	arcade.LoadROMs(machine, flagROMDir)

	pixelgl.Run(func() { runWindow(machine) })
}

// debugPanelW is the width, in unscaled window pixels, reserved alongside
// the game view for the register/port dump when -debug is set, grounded on
// the teacher's fixed debugResW beside its game view.
const debugPanelW = 220.0

// runWindow owns the pixelgl window and drives the machine's frame loop,
// generalized from the teacher's Display/Bus.Run pairing: one RGBA texture
// blitted from the machine's video memory once per frame, scaled up by
// flagScale, with keyboard input polled each frame before the next one
// runs. When -debug is set, a second text.Atlas-backed panel (same
// basicfont.Face7x13 idiom as the teacher's NewDisplay) is drawn beside the
// game view.
func runWindow(m *arcade.Machine) {
	gameW := dispW * flagScale
	gameH := dispH * flagScale

	screenW := gameW
	if flagDebug {
		screenW += debugPanelW
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Space Invaders",
		Bounds: pixel.R(0, 0, screenW, gameH),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		// Unlike audio, there is no "degraded" mode for the primary video
		// output itself — nothing downstream could render to. Fatal, not a
		// warning; see DESIGN.md's open-question note on this.
		log.Fatalf("window: %v", err)
	}
	win.Clear(colornames.Black)

	var debugText *text.Text
	if flagDebug {
		atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
		debugText = text.New(pixel.V(gameW+8, gameH-20), atlas)
	}

	frames := uint64(0)
	for !win.Closed() {
		if err := m.RunFrame(); err != nil {
			fmt.Println("machine halted:", err)
			// An undefined opcode leaves PC at the byte it was fetched from.
			line, _ := m.CPU.Disassemble(m.CPU.Pc)
			fmt.Println(line)
			fmt.Println(m.Diagnostics())
			os.Exit(2) // distinct from 1 (ROM load failure), per the undefined-opcode contract
		}
		frames++

		updateControllerInput(win, m.Input)

		win.Clear(colornames.Black)
		drawFrame(win, m.Blit(), gameW, gameH)

		if flagDebug {
			drawDebugPanel(win, debugText, m, frames)
		}

		win.Update()
	}
}

// drawDebugPanel refreshes and draws the debug text panel once per frame,
// grounded on the teacher's WriteRegDebugString/updateDebugDisplay pairing:
// Clear, WriteString, Draw, every frame, rather than only when it changes.
func drawDebugPanel(win *pixelgl.Window, t *text.Text, m *arcade.Machine, frames uint64) {
	t.Clear()
	fmt.Fprintf(t, "frame %d\n\n%s", frames, m.Diagnostics())
	t.Draw(win, pixel.IM)
}

func drawFrame(win *pixelgl.Window, frame *image.RGBA, gameW, gameH float64) {
	pic := pixel.PictureDataFromImage(frame)
	sprite := pixel.NewSprite(pic, pic.Bounds())

	mat := pixel.IM.
		ScaledXY(pixel.ZV, pixel.V(flagScale, flagScale)).
		Moved(pixel.V(gameW/2, gameH/2))
	sprite.Draw(win, mat)
}

// mutePlayer discards every sound trigger; wired in when -mute is set so
// the machine still runs with no audio backend at all.
type mutePlayer struct{}

func (mutePlayer) Play(arcade.SoundID) {}
func (mutePlayer) Stop(arcade.SoundID) {}
