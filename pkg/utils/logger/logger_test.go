package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	testCases := []struct {
		name           string
		print          func(l *Aggregate)
		expectedPrefix string
	}{
		{
			name:           "info",
			print:          func(l *Aggregate) { l.Info("walks: %d", 10) },
			expectedPrefix: "INFO: ",
		},
		{
			name:           "warn",
			print:          func(l *Aggregate) { l.Warn("walks: %d", 10) },
			expectedPrefix: "WARN: ",
		},
		{
			name:           "error",
			print:          func(l *Aggregate) { l.Error("walks: %d", 10) },
			expectedPrefix: "ERROR: ",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			test.print(New(&buf))

			line := buf.String()
			if !strings.HasPrefix(line, test.expectedPrefix) || !strings.HasSuffix(line, "walks: 10\n") {
				t.Errorf("%s(): unexpected line %q", test.name, line)
			}
		})
	}
}

func TestNilLogger(t *testing.T) {
	var l *Aggregate
	l.Info("nothing")
	l.Warn("nothing")
	l.Error("nothing")
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kpath.log")
	l, file, err := Open(path)
	if err != nil {
		t.Fatalf("Open(): expected nil, got %v", err)
	}

	l.Info("hello")
	file.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(): %v", err)
	}

	if !strings.Contains(string(content), "INFO: ") || !strings.Contains(string(content), "hello") {
		t.Errorf("Open(): unexpected log content %q", content)
	}

	if _, _, err := Open(filepath.Join(t.TempDir(), "missing", "kpath.log")); err == nil {
		t.Errorf("Open(): expected an error for a missing directory")
	}
}
