package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gastownhall/askllava/internal/inference"
	"github.com/gastownhall/askllava/internal/style"
)

// usageError signals a wrong argument count. The usage line goes to stdout.
type usageError struct {
	prog string
}

func (u *usageError) Error() string { return "usage: " + u.prog + " <image_filename> <instruction>" }

// HintedError wraps an error with a user-facing recovery hint.
type HintedError struct {
	Err  error
	Hint string
}

func (h *HintedError) Error() string { return h.Err.Error() }
func (h *HintedError) Unwrap() error { return h.Err }

// hintInference attaches a recovery hint to an ollama failure when the
// cause is recognisable.
func hintInference(err error) error {
	if err == nil {
		return nil
	}
	var hint string
	switch {
	case inference.IsUnreachable(err):
		hint = "Is ollama running? Start it with 'ollama serve' or set OLLAMA_HOST."
	case inference.IsModelMissing(err):
		hint = fmt.Sprintf("Pull the model first: 'ollama pull %s'.", inference.DefaultModel)
	default:
		return err
	}
	return &HintedError{Err: err, Hint: hint}
}

// printError writes err, and its hint if any, to w.
func printError(w io.Writer, prog string, err error) {
	fmt.Fprintf(w, "%s: %s\n", style.Error.Render(prog), err) //nolint:errcheck // best-effort stderr
	var h *HintedError
	if errors.As(err, &h) {
		fmt.Fprintf(w, "  %s %s\n", style.Warning.Render(style.IconHint), h.Hint) //nolint:errcheck // best-effort stderr
	}
}
