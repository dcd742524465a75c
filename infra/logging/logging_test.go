package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	l.Info("dropped")
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "postcards.log")
	l, err := New(path)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	l.Info("post deleted", zap.String("post_id", "42"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	if !strings.Contains(string(data), `"post_id":"42"`) {
		t.Fatalf("expected structured field in log: %q", data)
	}
}
