package clipboard

import (
	"errors"
	"testing"
)

func TestWriterFunc(t *testing.T) {
	var got string
	w := WriterFunc(func(text string) error {
		got = text
		return nil
	})

	if err := w.WriteText("feat: add login"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if got != "feat: add login" {
		t.Errorf("expected text to be forwarded, got %q", got)
	}
}

func TestUnavailable(t *testing.T) {
	err := Unavailable{}.WriteText("x")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
