//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/TweetTopics/internal/txt"
	"github.com/e-gun/TweetTopics/internal/vv"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"strings"
	"unicode"
)

// NGramTokeniser - the vectoriser's view of a document: tweet tokens minus stops, maybe lemmatized, as unigrams + bigrams
type NGramTokeniser struct {
	Base       txt.Tokenizer
	Stops      map[string]struct{}
	Lemmatizer txt.Lemmatizer
	MinN       int
	MaxN       int
}

// NewNGramTokeniser - the vectoriser defaults: tweet-aware, handle-stripping, 1- and 2-grams
func NewNGramTokeniser(stops []string, lm txt.Lemmatizer) NGramTokeniser {
	return NGramTokeniser{
		Base:       txt.NewTweetTokeniser(),
		Stops:      txt.StopSet(stops),
		Lemmatizer: lm,
		MinN:       vv.NGRAMMIN,
		MaxN:       vv.NGRAMMAX,
	}
}

// ForEachIn - satisfy nlp.Tokeniser
func (t NGramTokeniser) ForEachIn(text string, f func(token string)) {
	tokens := t.unigrams(text)

	mn, mx := t.MinN, t.MaxN
	if mn < 1 {
		mn = 1
	}
	if mx < mn {
		mx = mn
	}

	for n := mn; n <= mx; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			if n == 1 {
				f(tokens[i])
			} else {
				f(strings.Join(tokens[i:i+n], vv.NGRAMJOINER))
			}
		}
	}
}

// Tokenise - satisfy nlp.Tokeniser
func (t NGramTokeniser) Tokenise(text string) []string {
	var grams []string
	t.ForEachIn(text, func(g string) {
		grams = append(grams, g)
	})
	return grams
}

func (t NGramTokeniser) unigrams(text string) []string {
	base := t.Base
	if base == nil {
		base = txt.NewTweetTokeniser()
	}

	tokens := txt.Tokenize(StripAccentsASCII(strings.ToLower(text)), t.Stops, base, false)
	if t.Lemmatizer != nil {
		tokens = txt.Lemmatize(tokens, t.Lemmatizer)
	}
	return tokens
}

// StripAccentsASCII - decompose and then drop everything that is not ASCII: "café" -> "cafe"; "naïve 🙂" -> "naive "
func StripAccentsASCII(s string) string {
	// a transform.Transformer carries state: build one per call
	tr := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}
