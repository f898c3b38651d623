package logger

import (
	"go.llib.dev/fizzbuzz/pkg/logging"
)

type testingTB interface {
	Helper()
	Cleanup(func())
	Log(args ...any)
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) logging.StubOutput {
	tb.Helper()
	original := Default
	tb.Cleanup(func() { Default = original })
	l, buf := logging.Stub(tb)
	Default = l
	return buf
}
