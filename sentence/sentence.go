package sentence

import (
	"strings"
)

// Doc is a paragraph: an ordered list of tagged sentences.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels    []string   `json:"labels,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// Token represents a word of the sentence with its POS tag.
type Token struct {
	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// The unmodified word
	Text string `json:"text"`

	// The POS tag, f.ex. NN, VBZ
	Tag string `json:"tag"`

	// The lemma of the word, may be empty
	Lemma string `json:"lemma,omitempty"`
}

// LemmaOrText returns the lemma, or the lower cased text when the token
// carries no lemma.
func (t Token) LemmaOrText() string {
	if t.Lemma != "" {
		return t.Lemma
	}
	return strings.ToLower(t.Text)
}

type Sentence struct {
	Id     int     `json:"id"`
	Tokens []Token `json:"tokens"`
}

// Tags returns the tag sequence of the sentence.
func (s Sentence) Tags() []string {
	tags := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		tags[i] = t.Tag
	}
	return tags
}

// Words returns the surface words of the sentence.
func (s Sentence) Words() []string {
	words := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		words[i] = t.Text
	}
	return words
}

func (s Sentence) Len() int {
	return len(s.Tokens)
}

// Span joins the words in [start, start+length) with a space. ok is false if
// the span does not lie inside the sentence.
func (s Sentence) Span(start, length int) (text string, ok bool) {
	if start < 0 || length < 0 || start+length > len(s.Tokens) {
		return "", false
	}
	return strings.Join(s.Words()[start:start+length], " "), true
}

// LemmaSpan is Span over the lemmas of the tokens.
func (s Sentence) LemmaSpan(start, length int) (string, bool) {
	if start < 0 || length < 0 || start+length > len(s.Tokens) {
		return "", false
	}
	lemmas := make([]string, 0, length)
	for _, t := range s.Tokens[start : start+length] {
		lemmas = append(lemmas, t.LemmaOrText())
	}
	return strings.Join(lemmas, " "), true
}

// Strip returns a copy of the sentence without the tokens whose tag is in
// tags. Kept tokens are renumbered from 0; kept[i] is the position in s of
// the i-th kept token.
func (s Sentence) Strip(tags map[string]bool) (Sentence, []int) {
	out := Sentence{Id: s.Id, Tokens: make([]Token, 0, len(s.Tokens))}
	kept := make([]int, 0, len(s.Tokens))
	for i, t := range s.Tokens {
		if tags[t.Tag] {
			continue
		}
		t.Index = len(out.Tokens)
		out.Tokens = append(out.Tokens, t)
		kept = append(kept, i)
	}
	return out, kept
}

// TagSet builds the set argument of Strip.
func TagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

// New builds a sentence from parallel word and tag slices. Extra words or
// tags are ignored.
func New(words, tags []string) Sentence {
	n := min(len(words), len(tags))
	s := Sentence{Tokens: make([]Token, n)}
	for i := 0; i < n; i++ {
		s.Tokens[i] = Token{Index: i, Text: words[i], Tag: tags[i]}
	}
	return s
}
