package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		if p == nil {
			t.Fatal("FromContext returned nil")
		}
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Print("hello", " ", "world")
	if got := buf.String(); got != "hello world" {
		t.Errorf("Print() wrote %q, want %q", got, "hello world")
	}
}

func TestPrinter_Printf(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Printf("count: %d", 42)
	if got := buf.String(); got != "count: 42" {
		t.Errorf("Printf() wrote %q, want %q", got, "count: 42")
	}
}

func TestPrinter_Println(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Println("line one")
	p.Println("line two")
	want := "line one\nline two\n"
	if got := buf.String(); got != want {
		t.Errorf("Println() wrote %q, want %q", got, want)
	}
}

func TestPrinter_Writer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)
	p := FromContext(ctx)

	w := p.Writer()
	if w != &buf {
		t.Error("Writer() should return the underlying writer")
	}

	// Write directly through the writer
	if _, err := w.Write([]byte("direct")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := buf.String(); got != "direct" {
		t.Errorf("direct Write produced %q, want %q", got, "direct")
	}
}

func TestColorsAllowed(t *testing.T) {
	t.Run("NO_COLOR forbids", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if ColorsAllowed() {
			t.Error("ColorsAllowed() = true with NO_COLOR set")
		}
	})

	t.Run("dumb terminal forbids", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		t.Setenv("TERM", "dumb")
		if ColorsAllowed() {
			t.Error("ColorsAllowed() = true with TERM=dumb")
		}
	})

	t.Run("plain environment allows", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		t.Setenv("TERM", "xterm-256color")
		if !ColorsAllowed() {
			t.Error("ColorsAllowed() = false in a permitting environment")
		}
	})
}

func TestColorsEnabled(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()

	t.Run("NO_COLOR disables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		if ColorsEnabled(devNull) {
			t.Error("ColorsEnabled() = true with NO_COLOR set")
		}
	})

	t.Run("dumb terminal disables", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		if ColorsEnabled(devNull) {
			t.Error("ColorsEnabled() = true with TERM=dumb")
		}
	})

	t.Run("non-terminal disables", func(t *testing.T) {
		t.Setenv("TERM", "xterm-256color")
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		if ColorsEnabled(devNull) {
			t.Error("ColorsEnabled() = true for a non-terminal file")
		}
	})
}
