//go:build !windows

package sink

// New returns the platform injector. There is none outside Windows, so the
// bridge degrades to the logging sink.
func New() Sink {
	sinkLog.Warn().Msg("no key injector on this platform; running dry")
	return LogSink{}
}

// CapsLockOn always reports false where the LED state cannot be queried.
func CapsLockOn() bool {
	return false
}
