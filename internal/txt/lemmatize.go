//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"encoding/json"
	"fmt"
	"github.com/kljensen/snowball/english"
	"os"
	"strings"
)

//
// LEMMATIZING
//

// Lemmatizer - map a token to its base form
type Lemmatizer interface {
	Lemmatize(token string) string
}

// Lemmatize - one lemma per token, in order
func Lemmatize(tokens []string, lm Lemmatizer) []string {
	if lm == nil {
		lm = NullLemmatizer{}
	}
	lemmatized := make([]string, len(tokens))
	for i, t := range tokens {
		lemmatized[i] = lm.Lemmatize(t)
	}
	return lemmatized
}

// NullLemmatizer - every token is its own lemma
type NullLemmatizer struct{}

func (NullLemmatizer) Lemmatize(token string) string { return token }

// SnowballLemmatizer - the english snowball stemmer standing in as a base-form reducer
type SnowballLemmatizer struct{}

func (SnowballLemmatizer) Lemmatize(token string) string {
	// placeholders, emoticons, etc. pass through untouched
	if !isplainword(token) {
		return token
	}
	return english.Stem(token, false)
}

func isplainword(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '\'' {
			return false
		}
	}
	return true
}

// DictLemmatizer - the winner-takes-all headword map: form -> headword; misses are returned unchanged
type DictLemmatizer struct {
	Forms map[string]string
}

func (d DictLemmatizer) Lemmatize(token string) string {
	if hw, ok := d.Forms[strings.ToLower(token)]; ok {
		return hw
	}
	return token
}

// LoadDictLemmatizer - read a JSON object of {"form": "headword", ...}
func LoadDictLemmatizer(fn string) (DictLemmatizer, error) {
	const (
		FAIL1 = "LoadDictLemmatizer() could not read '%s': %w"
		FAIL2 = "LoadDictLemmatizer() could not parse '%s': %w"
		MSG1  = "LoadDictLemmatizer() loaded %d forms from '%s'"
	)

	raw, err := os.ReadFile(fn)
	if err != nil {
		return DictLemmatizer{}, fmt.Errorf(FAIL1, fn, err)
	}

	var forms map[string]string
	if err = json.Unmarshal(raw, &forms); err != nil {
		return DictLemmatizer{}, fmt.Errorf(FAIL2, fn, err)
	}

	lc := make(map[string]string, len(forms))
	for k, v := range forms {
		lc[strings.ToLower(k)] = v
	}
	Msg.PEEK(fmt.Sprintf(MSG1, len(lc), fn))
	return DictLemmatizer{Forms: lc}, nil
}
