package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/twinstick/ecs"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var cues = map[ecs.EventType]tone{
	ecs.EventEnemyKilled:    {freq: 880, duration: 40 * time.Millisecond},
	ecs.EventRoundAdvanced:  {freq: 1320, duration: 150 * time.Millisecond},
	ecs.EventPlayerDied:     {freq: 220, duration: 400 * time.Millisecond},
	ecs.EventAttackStarted:  {freq: 330, duration: 30 * time.Millisecond},
	ecs.EventUpgradeApplied: {freq: 1100, duration: 80 * time.Millisecond},
}

// sound plays short sine cues for match events. A nil *sound is silent.
type sound struct {
	played int
}

func newSound() (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &sound{}, nil
}

func (s *sound) Play(event ecs.EventType) {
	if s == nil {
		return
	}
	cue, ok := cues[event]
	if !ok {
		return
	}
	// Take streamers are single use, so each cue gets a fresh one.
	sine, err := generators.SineTone(sampleRate, cue.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(cue.duration), sine))
	s.played++
}

func (s *sound) Close() {
	if s != nil {
		speaker.Close()
	}
}

func (s *sound) Played() int {
	if s == nil {
		return 0
	}
	return s.played
}
