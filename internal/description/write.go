package description

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Split breaks a model response into fragments on every '.'.
// Empty fragments, including the one after a terminal period, are kept.
func Split(text string) []string {
	return strings.Split(text, ".")
}

// Write creates (or truncates) path and writes each fragment on its own line,
// echoing the fragment to echo in the same step. A failure part way through
// leaves the partially written file in place.
func Write(path string, fragments []string, echo io.Writer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	for _, frag := range fragments {
		if _, err := io.WriteString(f, frag+"\n"); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintln(echo, frag) //nolint:errcheck // best-effort echo
	}
	return nil
}
