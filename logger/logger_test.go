package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}

			if Logger == nil {
				t.Error("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			Cleanup()
		})
	}
}

func TestHelpersSafeBeforeInitialize(t *testing.T) {
	// The package-level helpers must not panic even when the logger has
	// been reset.
	Logger = zap.NewNop().Sugar()

	Info("info")
	Infof("info %d", 1)
	Infow("info", "key", "value")
	Error("error")
	Errorf("error %d", 1)
	Errorw("error", "key", "value")
	Warnf("warn %d", 1)
	Debugw("debug", "key", "value")
}
