package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	type test struct {
		name     string
		input    string
		expected Level
		err      bool
	}

	tests := []test{
		{name: "Trace", input: "trace", expected: LevelTrace},
		{name: "Debug", input: "DEBUG", expected: LevelDebug},
		{name: "Info", input: " info ", expected: LevelInfo},
		{name: "Warn", input: "warn", expected: LevelWarning},
		{name: "Warning", input: "Warning", expected: LevelWarning},
		{name: "Error", input: "error", expected: LevelError},
		{name: "Panic", input: "panic", expected: LevelPanic},
		{name: "Unknown", input: "verbose", err: true},
		{name: "Empty", err: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			level, err := ParseLevel(test.input)
			if test.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, level)
		})
	}
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "TRAC", LevelTrace.String())
	require.Equal(t, "WARN", LevelWarning.String())
	require.Equal(t, "PNIC", LevelPanic.String())
	require.Equal(t, "Level(42)", Level(42).String())
}

func TestLevelNameRoundTrip(t *testing.T) {
	for level := LevelTrace; level <= LevelPanic; level++ {
		parsed, err := ParseLevel(level.Name())
		require.NoError(t, err)
		require.Equal(t, level, parsed)
	}

	require.Equal(t, "level(42)", Level(42).Name())
}

func TestLogfNoLogger(t *testing.T) {
	SetLogger(nil)

	require.NotPanics(t, func() { Infof("nothing to see %d", 1) })
}

func TestLogfForwardsToLogger(t *testing.T) {
	logger := NewMockLogger(t)

	SetLogger(logger)
	defer SetLogger(nil)

	logger.On("Log", LevelTrace, "a %s", "b").Once()
	logger.On("Log", LevelDebug, "c").Once()
	logger.On("Log", LevelInfo, "d %d %d", 1, 2).Once()
	logger.On("Log", LevelWarning, "e").Once()
	logger.On("Log", LevelError, "f").Once()
	logger.On("Log", LevelPanic, "g %s", mock.Anything).Once()

	Tracef("a %s", "b")
	Debugf("c")
	Infof("d %d %d", 1, 2)
	Warnf("e")
	Errorf("f")

	require.PanicsWithValue(t, "g h", func() { Panicf("g %s", "h") })
}

func TestStdoutLogger(t *testing.T) {
	var (
		buf    bytes.Buffer
		now    = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		logger = StdoutLogger{MinLevel: LevelInfo, Writer: &buf, now: func() time.Time { return now }}
	)

	logger.Log(LevelDebug, "hidden")
	logger.Log(LevelInfo, "shown %d", 1)
	logger.Log(LevelError, "also shown")

	require.Equal(t, "2024-01-02T03:04:05Z INFO: shown 1\n2024-01-02T03:04:05Z ERRO: also shown\n", buf.String())
}
