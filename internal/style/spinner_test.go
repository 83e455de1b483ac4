package style

import (
	"bytes"
	"testing"
)

func TestSpinner_NonTTYWritesNothing(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := StartSpinner(&buf, "Asking llava about cat.png")
	s.Stop()
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q to a non-TTY writer, want nothing", buf.String())
	}
}
