package internal

import (
	"time"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

// KeyRepeat tracks held navigation keys and handles repeat timing for
// devices that do not auto-repeat on their own (game pads, d-pads).
// Only the most recently pressed key repeats.
type KeyRepeat struct {
	held           []string
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewKeyRepeat creates a KeyRepeat with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewKeyRepeat() *KeyRepeat {
	return NewKeyRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval, time.Now)
}

// NewKeyRepeatWithTiming creates a KeyRepeat with custom timing and clock.
func NewKeyRepeatWithTiming(delay, interval time.Duration, now func() time.Time) *KeyRepeat {
	if now == nil {
		now = time.Now
	}
	return &KeyRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
		now:            now,
	}
}

// SetHeld updates the held state for a key.
func (r *KeyRepeat) SetHeld(key string, held bool) {
	idx := r.indexOf(key)
	if held {
		if idx >= 0 {
			return
		}
		r.held = append(r.held, key)
		r.lastRepeatTime = r.now()
		r.hasRepeated = false
		return
	}

	if idx < 0 {
		return
	}
	r.held = append(r.held[:idx], r.held[idx+1:]...)
	r.lastRepeatTime = r.now()
	r.hasRepeated = false
}

// IsHeld returns true if any key is currently held.
func (r *KeyRepeat) IsHeld() bool {
	return len(r.held) > 0
}

// HeldKey returns the most recently pressed key still held, or "".
func (r *KeyRepeat) HeldKey() string {
	if len(r.held) == 0 {
		return ""
	}
	return r.held[len(r.held)-1]
}

// Update checks if a repeat should fire based on timing.
// Call this on every tick. It returns the key that should be processed
// again, or "" if no repeat should occur.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (r *KeyRepeat) Update() string {
	if !r.IsHeld() {
		r.lastRepeatTime = r.now()
		r.hasRepeated = false
		return ""
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	now := r.now()
	if now.Sub(r.lastRepeatTime) >= threshold {
		r.lastRepeatTime = now
		r.hasRepeated = true
		return r.HeldKey()
	}

	return ""
}

// Reset clears all held keys and timing state.
func (r *KeyRepeat) Reset() {
	r.held = r.held[:0]
	r.hasRepeated = false
	r.lastRepeatTime = r.now()
}

func (r *KeyRepeat) indexOf(key string) int {
	for i, k := range r.held {
		if k == key {
			return i
		}
	}
	return -1
}
