// Package audio plays the looping background music. Menu screens share one
// track, the run itself another; switching screens swaps the track with a
// short fade-in.
package audio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"go.uber.org/zap"
)

// SampleRate is the shared playback sample rate
const SampleRate = 44100

// ticksPerSecond matches the fixed simulation rate driving Update
const ticksPerSecond = 60

// Track identifies the active music track
type Track int

const (
	TrackNone Track = iota
	TrackMenu
	TrackGame
)

// MusicPlayer owns the audio context and both looping tracks
type MusicPlayer struct {
	menu *audio.Player
	game *audio.Player

	current   Track
	volume    float64
	muted     bool
	fadeTotal int
	fadeLeft  int

	logger *zap.Logger
}

// NewMusicPlayer decodes both tracks and prepares them as infinite loops.
// The audio context must be created once per process, so it is owned here.
func NewMusicPlayer(menuMP3, gameMP3 []byte, volume float64, fadeIn time.Duration, logger *zap.Logger) (*MusicPlayer, error) {
	ctx := audio.NewContext(SampleRate)

	menu, err := newLoopPlayer(ctx, menuMP3)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare menu music: %w", err)
	}
	game, err := newLoopPlayer(ctx, gameMP3)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare game music: %w", err)
	}

	return &MusicPlayer{
		menu:      menu,
		game:      game,
		volume:    volume,
		fadeTotal: int(fadeIn * ticksPerSecond / time.Second),
		logger:    logger.Named("audio"),
	}, nil
}

// newLoopPlayer decodes an MP3 asset into an infinitely looping player
func newLoopPlayer(ctx *audio.Context, data []byte) (*audio.Player, error) {
	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode mp3: %w", err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// PlayMenu switches to the menu track, restarting it from the beginning.
func (m *MusicPlayer) PlayMenu() {
	m.play(TrackMenu)
}

// PlayGame switches to the game track
func (m *MusicPlayer) PlayGame() {
	m.play(TrackGame)
}

func (m *MusicPlayer) play(track Track) {
	if m.current == track {
		return
	}

	if active := m.player(m.current); active != nil {
		active.Pause()
	}

	m.current = track
	next := m.player(track)
	if next == nil {
		return
	}

	m.fadeLeft = m.fadeTotal
	_ = next.Rewind()
	next.SetVolume(volumeFor(m.muted, m.volume, m.fadeLeft, m.fadeTotal))
	next.Play()
}

func (m *MusicPlayer) player(track Track) *audio.Player {
	switch track {
	case TrackMenu:
		return m.menu
	case TrackGame:
		return m.game
	default:
		return nil
	}
}

// Update advances the fade-in by one tick
func (m *MusicPlayer) Update() {
	if m.fadeLeft <= 0 {
		return
	}
	m.fadeLeft--
	if active := m.player(m.current); active != nil {
		active.SetVolume(volumeFor(m.muted, m.volume, m.fadeLeft, m.fadeTotal))
	}
}

// ToggleMute flips the music on or off and applies it immediately
func (m *MusicPlayer) ToggleMute() {
	m.muted = !m.muted
	if active := m.player(m.current); active != nil {
		active.SetVolume(volumeFor(m.muted, m.volume, m.fadeLeft, m.fadeTotal))
	}

	if m.muted {
		m.logger.Info("Music turned off")
	} else {
		m.logger.Info("Music turned on")
	}
}

// Muted reports whether the music is currently off
func (m *MusicPlayer) Muted() bool {
	return m.muted
}

// volumeFor computes the effective volume during a fade. Muting wins over
// everything; otherwise the volume ramps linearly from 0 to base.
func volumeFor(muted bool, base float64, fadeLeft, fadeTotal int) float64 {
	if muted {
		return 0
	}
	if fadeTotal <= 0 || fadeLeft <= 0 {
		return base
	}
	return base * float64(fadeTotal-fadeLeft) / float64(fadeTotal)
}
