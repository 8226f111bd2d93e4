package main

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"os"
	"testing"
)

// writeTestWAV builds a minimal valid PCM WAVE file for loadWAV to parse.
func writeTestWAV(t *testing.T, path string, sampleRate, channels, bitsPerSample int, data []byte) {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	byteRate := sampleRate * channels * (bitsPerSample / 8)
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	blockAlign := channels * (bitsPerSample / 8)
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	if err := ioutil.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadWAVParsesFormatAndData(t *testing.T) {
	dir, err := ioutil.TempDir("", "invaders-wav")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := dir + "/test.wav"
	samples := []byte{0x01, 0x02, 0x03, 0x04}
	writeTestWAV(t, path, 22050, 1, 8, samples)

	sample, err := loadWAV(path)
	if err != nil {
		t.Fatalf("loadWAV: %v", err)
	}

	if sample.sampleRate != 22050 {
		t.Errorf("sampleRate = %d, want 22050", sample.sampleRate)
	}
	if sample.channelCount != 1 {
		t.Errorf("channelCount = %d, want 1", sample.channelCount)
	}
	if sample.bitDepthBytes != 1 {
		t.Errorf("bitDepthBytes = %d, want 1", sample.bitDepthBytes)
	}
	if !bytes.Equal(sample.data, samples) {
		t.Errorf("data = %v, want %v", sample.data, samples)
	}
}

func TestLoadWAVRejectsNonRIFF(t *testing.T) {
	dir, err := ioutil.TempDir("", "invaders-wav-bad")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := dir + "/bad.wav"
	if err := ioutil.WriteFile(path, []byte("not a wav file at all"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := loadWAV(path); err == nil {
		t.Errorf("loadWAV on a non-RIFF file returned no error")
	}
}

func TestMutePlayerNeverPanics(t *testing.T) {
	var p mutePlayer
	p.Play(0)
	p.Play(9)
	p.Stop(0)
}
