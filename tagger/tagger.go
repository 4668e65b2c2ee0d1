// Package tagger reads text that an external POS tagger already annotated.
//
// The accepted format is the common slash notation, one token per
// whitespace separated field:
//
//	The/DT black/JJ cat/NN chases/VBZ the/DT mouse/NN ./.
//
// A third field, word/TAG/lemma, carries the lemma. A lemma has at least one
// lower case letter, which tells it apart from a tag.
package tagger

import (
	"strings"

	"github.com/revelaction/ertrie/errors"
	sent "github.com/revelaction/ertrie/sentence"
)

// Tagger turns raw text into tagged tokens.
type Tagger interface {
	Tag(text string) ([]sent.Token, error)
}

// Slash parses text in slash notation.
type Slash struct{}

var _ Tagger = Slash{}

func (Slash) Tag(text string) ([]sent.Token, error) {
	return ParseSlash(text)
}

// ParseSlash parses text in slash notation. The word is everything up to
// the last slash that is followed by a tag, so that "1/2/CD" is the word
// "1/2" tagged CD.
func ParseSlash(text string) ([]sent.Token, error) {
	fields := strings.Fields(text)
	tokens := make([]sent.Token, 0, len(fields))

	for i, f := range fields {
		tok, err := parseField(f)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d", i)
		}
		tok.Index = i
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func parseField(f string) (sent.Token, error) {
	parts := strings.Split(f, "/")

	if len(parts) >= 3 {
		tag, lemma := parts[len(parts)-2], parts[len(parts)-1]
		if tag != "" && isTag(tag) && !isTag(lemma) {
			return sent.Token{Text: strings.Join(parts[:len(parts)-2], "/"), Tag: tag, Lemma: lemma}, nil
		}
	}

	if len(parts) >= 2 {
		tag := parts[len(parts)-1]
		word := strings.Join(parts[:len(parts)-1], "/")
		if tag != "" && word != "" {
			return sent.Token{Text: word, Tag: tag}, nil
		}
	}

	return sent.Token{}, errors.Wrapf(errors.ErrInvalidInput, "%q is not word/TAG", f)
}

// isTag reports whether s has no lower case letter. POS tags are upper case
// or punctuation.
func isTag(s string) bool {
	return strings.ToUpper(s) == s
}

// sentenceEnd are the tags and words that close a sentence.
var sentenceEnd = map[string]bool{".": true, "!": true, "?": true}

// Split cuts tokens into sentences after every token tagged or written as a
// sentence end. Token indexes are renumbered per sentence and sentences are
// numbered from 0.
func Split(tokens []sent.Token) []sent.Sentence {
	var sentences []sent.Sentence
	cur := sent.Sentence{}

	flush := func() {
		if len(cur.Tokens) == 0 {
			return
		}
		cur.Id = len(sentences)
		sentences = append(sentences, cur)
		cur = sent.Sentence{}
	}

	for _, t := range tokens {
		t.Index = len(cur.Tokens)
		cur.Tokens = append(cur.Tokens, t)
		if sentenceEnd[t.Tag] || sentenceEnd[t.Text] {
			flush()
		}
	}
	flush()

	return sentences
}

// ParseDoc tags text with tg and splits it into the sentences of a
// paragraph.
func ParseDoc(tg Tagger, title, text string) (sent.Doc, error) {
	tokens, err := tg.Tag(text)
	if err != nil {
		return sent.Doc{}, errors.Wrapf(err, "doc %q", title)
	}
	return sent.Doc{Title: title, Sentences: Split(tokens)}, nil
}
