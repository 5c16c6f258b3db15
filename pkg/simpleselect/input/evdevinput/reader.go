//go:build linux

package evdevinput

import (
	"context"
	"fmt"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/internal"
)

const tickInterval = 16 * time.Millisecond

// EventSource yields raw input events. *evdev.InputDevice implements it.
type EventSource interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Reader pumps an EventSource through a Translator.
type Reader struct {
	source     EventSource
	translator *Translator
	closer     func() error
}

// NewReader creates a reader over source. A nil translator means
// NewTranslator().
func NewReader(source EventSource, translator *Translator) *Reader {
	if translator == nil {
		translator = NewTranslator()
	}
	return &Reader{source: source, translator: translator}
}

// Open opens the input device at path, e.g. /dev/input/event0.
func Open(path string) (*Reader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	if name, err := device.Name(); err == nil {
		internal.GetLogger().Debug("Opened input device", "path", path, "name", name)
	}

	reader := NewReader(device, nil)
	reader.closer = device.Close
	return reader, nil
}

// Close closes the underlying device when the reader opened it.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}

// Run sends translated key events to out until ctx is done or the source
// fails. Reading happens on its own goroutine; closing the device unblocks
// it after Run returned.
func (r *Reader) Run(ctx context.Context, out chan<- simpleselect.KeyEvent) error {
	raw := make(chan evdev.InputEvent)
	readErr := make(chan error, 1)

	go func() {
		for {
			event, err := r.source.ReadOne()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case raw <- *event:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErr:
			return fmt.Errorf("read input event: %w", err)

		case event := <-raw:
			if key, ok := r.translator.Translate(event); ok {
				if err := send(ctx, out, key); err != nil {
					return err
				}
			}

		case <-ticker.C:
			if key, ok := r.translator.Tick(); ok {
				if err := send(ctx, out, key); err != nil {
					return err
				}
			}
		}
	}
}

func send(ctx context.Context, out chan<- simpleselect.KeyEvent, key simpleselect.KeyEvent) error {
	select {
	case out <- key:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
