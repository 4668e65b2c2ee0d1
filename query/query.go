package query

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/render"
	sent "github.com/revelaction/ertrie/sentence"
	"github.com/revelaction/ertrie/tagger"
	"github.com/revelaction/ertrie/trie"
)

const (
	// commandPrefix is the character in the prompt that prefixes a command
	commandPrefix = ":"

	quit = "quit"
)

type Handler struct {
	Matcher  *match.Matcher
	Tagger   tagger.Tagger
	Tags     []string
	Format   string
	HasColor bool
	Out      io.Writer
}

func NewHandler(m *match.Matcher, tags []string, format string, hasColor bool, out io.Writer) *Handler {
	return &Handler{
		Matcher:  m,
		Tagger:   tagger.Slash{},
		Tags:     tags,
		Format:   format,
		HasColor: hasColor,
		Out:      out,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+F: next Format, :strict :approx :auto :budget <cost> <mismatches>, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("ertrie query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Format = render.NextFormat(h.Format)
					fmt.Fprintln(h.Out, "Format set to: "+h.Format)
				}}),
		)

		history = append(history, in)

		done, err := h.Eval(ctx, in)
		if err != nil {
			fmt.Fprintf(h.Out, "✘ %v\n", err)
		}
		if done {
			return nil
		}
	}
}

// Eval runs one line of input. It reports whether the session is over.
func (h *Handler) Eval(ctx context.Context, in string) (bool, error) {
	in = strings.TrimSpace(in)
	switch {
	case in == "":
		return false, nil
	case in == quit:
		return true, nil
	case strings.HasPrefix(in, commandPrefix):
		return false, h.command(strings.Fields(in[len(commandPrefix):]))
	}

	tokens, err := h.Tagger.Tag(in)
	if err != nil {
		return false, err
	}

	sm, err := h.Matcher.MatchSentence(ctx, sent.Sentence{Tokens: tokens})
	if err != nil {
		return false, err
	}

	r, err := render.New(h.Format, h.Out, h.HasColor)
	if err != nil {
		return false, err
	}
	return false, r.Match(sm)
}

func (h *Handler) command(fields []string) error {
	if len(fields) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "empty command")
	}

	switch fields[0] {
	case "budget":
		if len(fields) != 3 {
			return errors.Wrap(errors.ErrInvalidInput, "usage: :budget <cost> <mismatches>")
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "cost %q", fields[1])
		}
		mm, err := strconv.Atoi(fields[2])
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "mismatches %q", fields[2])
		}
		b := trie.Budget{MaxCost: c, MaxMismatches: mm}
		if err := b.Validate(); err != nil {
			return err
		}
		h.Matcher = h.Matcher.With(match.WithBudget(b))
		fmt.Fprintf(h.Out, "Budget set to %s\n", b)
		return nil
	}

	s, err := match.ParseStrategy(fields[0])
	if err != nil {
		return err
	}
	h.Matcher = h.Matcher.With(match.WithStrategy(s))
	fmt.Fprintf(h.Out, "Strategy set to %s\n", s)
	return nil
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.TextBeforeCursor(), in.GetWordBeforeCursor())
	}
}

// suggest completes commands at the start of the line and tags after a
// slash.
func (h *Handler) suggest(line, word string) []prompt.Suggest {
	s := []prompt.Suggest{}
	if word == "" {
		return s
	}

	if strings.HasPrefix(line, commandPrefix) && !strings.Contains(line, " ") {
		cmds := append(match.SupportedStrategies(), "budget")
		for _, c := range cmds {
			if strings.HasPrefix(commandPrefix+c, word) {
				s = append(s, prompt.Suggest{Text: commandPrefix + c})
			}
		}
		return s
	}

	i := strings.LastIndex(word, "/")
	if i < 0 {
		return s
	}

	text, tag := word[:i+1], word[i+1:]
	for _, t := range h.Tags {
		if strings.HasPrefix(t, tag) {
			s = append(s, prompt.Suggest{Text: text + t, Description: "🏷 " + t})
		}
	}
	return s
}
