package model

import (
	"strings"

	"github.com/pkg/errors"
)

// RunState is whether a simulation advances on tick.
type RunState int

const (
	Running RunState = iota
	Paused
)

// Toggle returns the opposite state.
func (s RunState) Toggle() RunState {
	if s == Running {
		return Paused
	}
	return Running
}

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// ParseRunState converts "running" or "paused" into a RunState. Empty input
// yields Running.
func ParseRunState(s string) (RunState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "running":
		return Running, nil
	case "paused":
		return Paused, nil
	}
	return Running, errors.Wrapf(ErrInvalidArgument, "[ParseRunState] unknown run state %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *RunState) UnmarshalText(text []byte) error {
	parsed, err := ParseRunState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Set implements flag.Value.
func (s *RunState) Set(v string) error {
	return s.UnmarshalText([]byte(v))
}
