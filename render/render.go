package render

import (
	"io"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/paragraph"
)

const DefaultFormat = "text"

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"text", "json", "yaml"}
}

// NextFormat returns the format following format in SupportedFormats()
// order, wrapping around.
func NextFormat(format string) string {
	supported := SupportedFormats()
	for i, f := range supported {
		if f == format {
			return supported[(i+1)%len(supported)]
		}
	}
	return supported[0]
}

// Renderer writes the results of the matcher and the paragraph processor.
type Renderer interface {
	Model(m model.Model) error
	Match(sm *match.SentenceMatch) error
	Outcome(o *paragraph.Outcome) error
}

// New returns the renderer for format. Color applies only to text.
func New(format string, w io.Writer, hasColor bool) (Renderer, error) {
	switch format {
	case "text":
		return &TextRenderer{W: w, HasColor: hasColor}, nil
	case "json":
		return NewJSONRenderer(w), nil
	case "yaml":
		return NewYAMLRenderer(w), nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown format %q", format)
}
