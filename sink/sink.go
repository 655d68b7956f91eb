// Package sink delivers synthesized key events to the operating system. The
// bridge engine only talks to the Sink interface; the Windows implementation
// injects real input, everything else logs.
package sink

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/invertedmushroom/bg3bridge/keycode"
)

var sinkLog zerolog.Logger = log.With().Str("module", "sink").Logger()

// ErrNotInjectable is returned for chords containing mouse buttons or wheel
// steps; SendInput key events cannot express them.
var ErrNotInjectable = errors.New("chord is not injectable as keyboard input")

// Sink receives key transitions. Down presses every key in the chord in
// order; Up releases them in reverse order; Tap is a short press-release.
type Sink interface {
	Down(c keycode.Chord) error
	Up(c keycode.Chord) error
	Tap(c keycode.Chord) error
}

// LogSink records every transition to the log and injects nothing. It is the
// dry-run sink and the fallback on platforms without an injector.
type LogSink struct{}

func (LogSink) Down(c keycode.Chord) error {
	if !c.Injectable() {
		return ErrNotInjectable
	}
	sinkLog.Info().Str("chord", c.String()).Msg("[DryRun] key down")
	return nil
}

func (LogSink) Up(c keycode.Chord) error {
	if !c.Injectable() {
		return ErrNotInjectable
	}
	sinkLog.Info().Str("chord", c.String()).Msg("[DryRun] key up")
	return nil
}

func (LogSink) Tap(c keycode.Chord) error {
	if !c.Injectable() {
		return ErrNotInjectable
	}
	sinkLog.Info().Str("chord", c.String()).Msg("[DryRun] key tap")
	return nil
}
