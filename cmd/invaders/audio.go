package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"log"

	"github.com/hajimehoshi/oto/v2"

	"github.com/go8080/invaders/arcade"
)

// soundFiles names the ten WAV samples in the fixed SoundID order the
// reference cabinet uses (sounds/0.wav .. sounds/9.wav), grounded on
// original_source/game/hardware.c's audio_init.
var soundFiles = [...]string{
	"0.wav", "1.wav", "2.wav", "3.wav", "4.wav",
	"5.wav", "6.wav", "7.wav", "8.wav", "9.wav",
}

// wavSample is one decoded WAV file's raw PCM bytes plus the format oto
// needs to play it back; each file is allowed its own sample rate/channel
// count/bit depth since the cabinet's original samples were never
// normalized to a common format.
type wavSample struct {
	sampleRate    int
	channelCount  int
	bitDepthBytes int
	data          []byte
}

// loadWAV parses a PCM WAVE file's RIFF container directly. No library in
// the example corpus decodes WAV/RIFF (the nearest neighbors all push audio
// through higher-level engines that take already-decoded samples), so this
// is a deliberate, narrowly-scoped exception to reaching for a dependency:
// PCM WAVE's container is ~40 bytes of fixed-position fields, not a format
// worth a library for.
func loadWAV(path string) (*wavSample, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < 44 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, fmt.Errorf("audio: %s is not a RIFF/WAVE file", path)
	}

	var sample wavSample
	var dataBytes []byte

	pos := 12
	for pos+8 <= len(raw) {
		chunkID := string(raw[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(raw[pos+4 : pos+8]))
		body := raw[pos+8:]
		if chunkSize > len(body) {
			return nil, fmt.Errorf("audio: %s has a truncated %q chunk", path, chunkID)
		}

		switch chunkID {
		case "fmt ":
			channels := binary.LittleEndian.Uint16(body[2:4])
			rate := binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample := binary.LittleEndian.Uint16(body[14:16])
			sample.channelCount = int(channels)
			sample.sampleRate = int(rate)
			sample.bitDepthBytes = int(bitsPerSample) / 8
		case "data":
			dataBytes = body[:chunkSize]
		}

		pos += 8 + chunkSize
		if chunkSize%2 == 1 {
			pos++ // chunks are word-aligned
		}
	}

	if dataBytes == nil || sample.sampleRate == 0 {
		return nil, fmt.Errorf("audio: %s is missing a fmt or data chunk", path)
	}
	sample.data = dataBytes
	return &sample, nil
}

// otoPlayer implements arcade.Player over oto/v2, one oto.Context per
// distinct sample format (the cabinet's ten WAVs are not all recorded at
// the same rate) and a fresh oto.Player per trigger so overlapping
// triggers of the same effect don't cut each other off. active tracks the
// most recent player started for each SoundID, so Stop (only ever called
// for the looping UFO-move effect, per hardware.c's ufo_move_chan) can halt
// it without touching every other sound's contexts.
type otoPlayer struct {
	contexts map[string]*oto.Context
	samples  [10]*wavSample
	active   map[arcade.SoundID]*oto.Player
}

// newOtoPlayer loads every cabinet sample it can and opens an oto context
// per distinct format; a sample that fails to load or whose format fails to
// open simply plays nothing (Play silently no-ops for it), matching the
// "host I/O failures degrade gracefully, only the affected subsystem is
// disabled" contract — one bad WAV file must not take down the CPU.
func newOtoPlayer(dir string) *otoPlayer {
	p := &otoPlayer{
		contexts: make(map[string]*oto.Context),
		active:   make(map[arcade.SoundID]*oto.Player),
	}

	for i, name := range soundFiles {
		path := dir + "/" + name
		sample, err := loadWAV(path)
		if err != nil {
			log.Printf("audio: unable to load %s, disabling this sound: %v", path, err)
			continue
		}
		p.samples[i] = sample

		key := contextKey(sample)
		if _, ok := p.contexts[key]; ok {
			continue
		}
		ctx, ready, err := oto.NewContext(sample.sampleRate, sample.channelCount, sample.bitDepthBytes)
		if err != nil {
			log.Printf("audio: unable to open oto context for %s, disabling this sound: %v", path, err)
			p.samples[i] = nil
			continue
		}
		<-ready
		p.contexts[key] = ctx
	}

	return p
}

func contextKey(s *wavSample) string {
	return fmt.Sprintf("%d/%d/%d", s.sampleRate, s.channelCount, s.bitDepthBytes)
}

// Play triggers sample id on its context, fire-and-forget. Matches
// arcade.Player; called synchronously from the CPU's OUT handler, so this
// must not block.
func (p *otoPlayer) Play(id arcade.SoundID) {
	if int(id) < 0 || int(id) >= len(p.samples) {
		return
	}
	sample := p.samples[id]
	if sample == nil {
		return
	}
	ctx, ok := p.contexts[contextKey(sample)]
	if !ok {
		return
	}

	player := ctx.NewPlayer(bytes.NewReader(sample.data))
	p.active[id] = player
	player.Play()
}

// Stop halts whatever instance of id is currently playing, if any. Used for
// the UFO-move loop: WriteBank1 replays it on every write while its bit is
// held, and WriteBank2's UFO-hit edge calls Stop to cut it off, the same
// pairing as hardware.c's ufo_move_chan/Mix_HaltChannel.
func (p *otoPlayer) Stop(id arcade.SoundID) {
	player, ok := p.active[id]
	if !ok {
		return
	}
	player.Pause()
	delete(p.active, id)
}
