package cmd

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeTerminal(t *testing.T, start func(title string, action func()) error) {
	origTerminal, origSpin := terminal, spin
	terminal = func(io.Writer) bool { return true }
	spin = start
	t.Cleanup(func() { terminal, spin = origTerminal, origSpin })
}

func TestWithSpinner_RunsActionWhenSpinnerFailsToStart(t *testing.T) {
	fakeTerminal(t, func(string, func()) error {
		return errors.New("open /dev/tty: no such device")
	})

	calls := 0
	(&session{}).withSpinner("Loading", func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestWithSpinner_DoesNotRepeatActionAfterLateFailure(t *testing.T) {
	fakeTerminal(t, func(_ string, action func()) error {
		action()
		return errors.New("render failed")
	})

	calls := 0
	(&session{}).withSpinner("Loading", func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestWithSpinner_SkipsSpinnerOffTerminal(t *testing.T) {
	spun := false
	origSpin := spin
	spin = func(string, func()) error { spun = true; return nil }
	t.Cleanup(func() { spin = origSpin })

	calls := 0
	(&session{stderr: io.Discard}).withSpinner("Loading", func() { calls++ })
	assert.Equal(t, 1, calls)
	assert.False(t, spun)
}
