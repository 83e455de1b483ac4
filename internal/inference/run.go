package inference

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/ollama/ollama/api"
)

// Generator is the part of the ollama client Run depends on.
type Generator interface {
	Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error
}

// NewClient returns an ollama client configured from the environment
// (OLLAMA_HOST, defaulting to the local daemon).
func NewClient() (Generator, error) {
	c, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("configuring ollama client: %w", err)
	}
	return c, nil
}

// Run sends the prompt and image to ollama in a single non-streaming
// generate call and blocks until the whole response has arrived.
func Run(ctx context.Context, g Generator, r *Request) (*Result, error) {
	img, err := os.ReadFile(r.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	model := r.Model
	if model == "" {
		model = DefaultModel
	}
	stream := false
	req := &api.GenerateRequest{
		Model:  model,
		Prompt: r.Prompt,
		Images: []api.ImageData{img},
		Stream: &stream,
	}

	var out strings.Builder
	if err := g.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("calling ollama: %w", err)
	}

	return &Result{Output: out.String(), Model: model}, nil
}

// IsModelMissing reports whether ollama rejected the request because the
// model has not been pulled.
func IsModelMissing(err error) bool {
	var se api.StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsUnreachable reports whether the ollama daemon could not be contacted.
func IsUnreachable(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
