package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    hclog.Level
	}{
		{"default", false, false, hclog.Info},
		{"verbose", true, false, hclog.Debug},
		{"quiet", false, true, hclog.Error},
		{"quiet wins", true, true, hclog.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.verbose, tt.quiet); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New("swatch", &buf, true, false)
	logger.Debug("building table", "workers", 4)
	if !strings.Contains(buf.String(), "swatch: building table: workers=4") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	buf.Reset()
	logger = New("swatch", &buf, false, false)
	logger.Debug("hidden")
	logger.Info("wrote report", "path", "out.txt")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "wrote report: path=out.txt") {
		t.Errorf("unexpected log output %q", buf.String())
	}

	buf.Reset()
	logger = New("swatch", &buf, false, true)
	logger.Info("hidden")
	logger.Error("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected quiet log output %q", buf.String())
	}

	// Must not panic.
	New("swatch", nil, true, false).Error("discarded")
}
