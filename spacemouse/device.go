package spacemouse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var devLog zerolog.Logger = log.With().Str("module", "spacemouse").Logger()

// reportBuf matches the 64-byte reads the receiver expects.
const reportBuf = 64

// Device reads raw HID reports from a SpaceMouse and emits decoded events.
type Device struct {
	rc io.ReadCloser
}

// Open opens a raw HID node (e.g. /dev/hidraw3) for reading reports.
func Open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open HID device %s: %w", path, err)
	}
	devLog.Info().Str("path", path).Msg("opened SpaceMouse device")
	return &Device{rc: f}, nil
}

// NewDevice wraps an already-open report stream. Used by tests and replay
// sources.
func NewDevice(rc io.ReadCloser) *Device {
	return &Device{rc: rc}
}

// Run reads reports until ctx is cancelled or the stream ends, sending each
// decoded event to out. Unknown report IDs are skipped; short reports are
// logged and skipped. Run closes out on return.
func (d *Device) Run(ctx context.Context, out chan<- Event) error {
	defer close(out)

	// Reads block; closing the stream is the only way to interrupt them.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			d.rc.Close()
		case <-done:
		}
	}()

	buf := make([]byte, reportBuf)
	for {
		n, err := d.rc.Read(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				devLog.Debug().Msg("report stream ended")
				return nil
			}
			return fmt.Errorf("read report: %w", err)
		}
		if n == 0 {
			continue
		}

		ev, ok, err := Decode(buf[:n])
		if err != nil {
			devLog.Warn().Err(err).Msg("skipping malformed report")
			continue
		}
		if !ok {
			continue
		}

		select {
		case out <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases the underlying stream.
func (d *Device) Close() error {
	return d.rc.Close()
}
