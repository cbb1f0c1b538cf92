package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("E103")

	if err.Code != "E103" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q", err.Category)
	}
	if !strings.Contains(err.Error(), "E103") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := New("E140").Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E140") != nil {
		t.Error("FromError(nil) must return nil")
	}

	pe := New("E120")
	if got := FromError(pe, "E140"); got != pe {
		t.Error("FromError must pass an existing PagesError through")
	}

	wrapped := FromError(errors.New("boom"), "E140")
	if wrapped.Code != "E140" {
		t.Errorf("Code = %q, want E140", wrapped.Code)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E120").
		WithDetail("The directory entrypoints/popup/pages is missing.").
		WithSuggestion("Create the directory or remove it from pages.json")

	out := err.Format()

	for _, want := range []string{"E120", "Pages root not found", "Hint:", "pages.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	got := New("E101").FormatCompact()
	if got != "E101: Configuration file not found" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc ddd", 7)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	for _, line := range lines {
		if len(line) > 7 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}
