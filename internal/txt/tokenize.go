//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"github.com/e-gun/TweetTopics/internal/mm"
	"strings"
)

var Msg = mm.NewMessageMaker()

// Tokenizer - anything that can split a string into tokens
type Tokenizer interface {
	Tokenize(text string) []string
}

// Tokenize - optionally normalize the text, split it with tk, and then drop any token whose lowercase form is a stop word
func Tokenize(text string, stops map[string]struct{}, tk Tokenizer, preprocess bool) []string {
	if tk == nil {
		tk = TweetTokeniser{PreserveCase: false, ReduceLen: true, StripHandles: false}
	}

	if preprocess {
		text = Normalize(text, false)
	}

	tokens := tk.Tokenize(text)
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, stop := stops[strings.ToLower(t)]; stop {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
