package automation

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestDriverInterfaces(t *testing.T) {
	var _ Driver = (*xdotoolDriver)(nil)
	var _ Driver = (*robotgoDriver)(nil)
}

func TestDetectUnknownDriver(t *testing.T) {
	_, err := Detect(context.Background(), "wiggle")
	if err == nil {
		t.Fatal("Detect should reject an unknown driver name")
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single id", "41943045\n", "41943045"},
		{"multiple matches take first", "41943045\n41943099\n", "41943045"},
		{"no newline", "41943045", "41943045"},
		{"empty", "", ""},
		{"whitespace only", "  \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstLine(tt.input); got != tt.want {
				t.Errorf("firstLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProcessHint(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Microsoft Teams", "teams"},
		{"Slack", "slack"},
		{"", ""},
		{"  spaced   out  ", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := processHint(tt.title); got != tt.want {
				t.Errorf("processHint(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestXdotoolFindWindow(t *testing.T) {
	if _, err := exec.LookPath("xdotool"); err != nil {
		t.Skip("xdotool not available on this system")
	}

	d, err := newXdotoolDriver(context.Background())
	if err != nil {
		t.Fatalf("newXdotoolDriver failed: %v", err)
	}

	// A title that should never exist anywhere.
	_, err = d.FindWindow(context.Background(), "keepactive-no-such-window-crz7q")
	if !errors.Is(err, ErrWindowNotFound) {
		t.Errorf("FindWindow for an absent title = %v, want ErrWindowNotFound", err)
	}
}
