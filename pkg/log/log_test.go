package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, logrus.InfoLevel)

	l.Debugf("hidden %d", 1)
	l.Infof("loaded %s", "cartridge")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug message to be discarded, got %q", out)
	}
	if !strings.Contains(out, "msg=loaded cartridge") {
		t.Errorf("Expected info message to be logged, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	if err != nil || level != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v (%v)", level, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("Expected an error for an unknown level")
	}
}
