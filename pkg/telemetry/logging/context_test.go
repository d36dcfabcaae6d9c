package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()

	if got := GetRunID(ctx); got != "" {
		t.Errorf("expected empty run ID on bare context, got %q", got)
	}

	ctx = WithRunID(ctx, "run-42")
	if got := GetRunID(ctx); got != "run-42" {
		t.Errorf("expected run ID %q, got %q", "run-42", got)
	}
}

func TestFileContext(t *testing.T) {
	ctx := WithFile(context.Background(), "configs/app.json")
	if got := GetFile(ctx); got != "configs/app.json" {
		t.Errorf("expected file %q, got %q", "configs/app.json", got)
	}
}

func TestLogger_WithContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "text", Writer: buf})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx := WithFile(WithRunID(context.Background(), "run-7"), "app.env")
	logger.WithContext(ctx).Info("pass complete")

	out := buf.String()
	if !strings.Contains(out, "run_id=run-7") {
		t.Errorf("expected run_id field in output: %q", out)
	}
	if !strings.Contains(out, "file=app.env") {
		t.Errorf("expected file field in output: %q", out)
	}
}

func TestLogger_WithContext_EmptyContext(t *testing.T) {
	logger := Discard()
	if got := logger.WithContext(context.Background()); got != logger {
		t.Error("expected same logger back when context carries no fields")
	}
}
