// Package inference asks a local ollama instance to describe an image.
package inference

// DefaultModel is the vision-language model every request names.
const DefaultModel = "llava"

// Request describes a single image question.
type Request struct {
	Model     string // ollama tag, e.g. "llava"
	Prompt    string
	ImagePath string
}

// Result holds the complete, non-streamed model output.
type Result struct {
	Output string
	Model  string
}
