package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  LogLevel
		known bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" warning ", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestCLIMode_WritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("toolsvc", "hidden %d", 1)
	Error("toolsvc", errors.New("boom"), "request %s failed", "abc")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "request abc failed")
	assert.Contains(t, out, "subsystem=toolsvc")
	assert.Contains(t, out, "error=boom")
}

func TestTUIMode_FiltersAndDelivers(t *testing.T) {
	ch := initTUI(LevelInfo, 4)
	defer CloseTUIChannel()

	Debug("dashboard", "too quiet")
	Warn("dashboard", "panel %s closed", "uuid-generator")

	require.Len(t, ch, 1)
	entry := <-ch
	assert.Equal(t, LevelWarn, entry.Level)
	assert.Equal(t, "dashboard", entry.Subsystem)
	assert.Equal(t, "panel uuid-generator closed", entry.Message)
}

func TestTUIMode_DropsWhenFull(t *testing.T) {
	ch := initTUI(LevelDebug, 2)
	defer CloseTUIChannel()

	for i := 0; i < 5; i++ {
		Info("dashboard", "entry %d", i)
	}

	assert.Len(t, ch, 2)
	assert.Equal(t, int64(3), Dropped())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
