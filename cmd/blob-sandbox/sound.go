package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 25 * time.Millisecond
	clickGap      = 90 * time.Millisecond
	clickBaseHz   = 220.0
)

// Clicker plays a short tone on wall impacts, rate limited
type Clicker struct {
	last time.Time
}

// NewClicker initializes the speaker
func NewClicker() (*Clicker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Clicker{}, nil
}

// Click plays a tone whose pitch rises with the number of impacting vertices
func (c *Clicker) Click(impacts int) {
	now := time.Now()
	if now.Sub(c.last) < clickGap {
		return
	}
	c.last = now

	freq := clickBaseHz * (1 + float64(min(impacts, 40))/10)
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), tone))
}

// Close releases the audio device
func (c *Clicker) Close() {
	speaker.Close()
}
