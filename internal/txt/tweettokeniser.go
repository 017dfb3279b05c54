//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"github.com/e-gun/TweetTopics/internal/gen"
	"github.com/e-gun/TweetTopics/internal/vv"
	"regexp"
	"strings"
)

//
// TWEET-AWARE TOKENIZING
//

const (
	// the alternation order is the priority order: leftmost-first wins
	tkplaceholder = `(?i:<-(?:@|#|url)->)`
	tkurl         = `(?:https?://[^\s\p{Z}]+|www\.[^\s\p{Z}]+)`
	tkemoticon    = `(?:[<>]?[:;=8][\-o\*']?[\)\]\(\[dDpP/:\}\{@\|\\]|[\)\]\(\[dDpP/:\}\{@\|\\][\-o\*']?[:;=8][<>]?|</?3)`
	tkhtml        = `(?:<[^>\s]+>)`
	tkarrow       = `(?:[\-]+>|<[\-]+)`
	tkhandle      = `(?:@[\p{L}\p{M}\p{N}_]+)`
	tkhashtag     = `(?:#+[\p{L}\p{M}\p{N}_]+[\p{L}\p{M}\p{N}_'\-]*[\p{L}\p{M}\p{N}_]+|#[\p{L}\p{M}\p{N}_])`
	tkemail       = `(?:[\w.+\-]+@[\w\-]+\.(?:[\w\-]\.?)+[\w\-])`
	tkjoined      = `(?:[\p{L}\p{M}](?:[\p{L}\p{M}]|['\-_])+[\p{L}\p{M}])`
	tknumber      = `(?:[+\-]?\d+[,/.:\-]\d+[+\-]?)`
	tkword        = `(?:[\p{L}\p{M}\p{N}_]+)`
	tkellipsis    = `(?:\.(?:\s*\.)+)`
	tkother       = `(?:\S)`
)

var (
	tweettokens = regexp.MustCompile(strings.Join([]string{tkplaceholder, tkurl, tkemoticon, tkhtml, tkarrow,
		tkhandle, tkhashtag, tkemail, tkjoined, tknumber, tkword, tkellipsis, tkother}, "|"))
	isemoticon = regexp.MustCompile(`^` + tkemoticon + `$`)
	ishandle   = regexp.MustCompile(`^@[\p{L}\p{M}\p{N}_]+$`)
)

// TweetTokeniser - split a tweet into words, urls, handles, hashtags, emoticons, and punctuation
type TweetTokeniser struct {
	PreserveCase bool // otherwise lowercase everything but the emoticons: ":D" stays ":D"
	ReduceLen    bool // "waaaaaay" -> "waaay"
	StripHandles bool // drop "@someone"
}

// NewTweetTokeniser - the settings used by the vectoriser
func NewTweetTokeniser() TweetTokeniser {
	return TweetTokeniser{PreserveCase: false, ReduceLen: true, StripHandles: true}
}

// Tokenize - split the text into tokens
func (t TweetTokeniser) Tokenize(text string) []string {
	var tt []string
	t.ForEachIn(text, func(tk string) {
		tt = append(tt, tk)
	})
	return tt
}

// Tokenise - satisfy nlp.Tokeniser
func (t TweetTokeniser) Tokenise(text string) []string {
	return t.Tokenize(text)
}

// ForEachIn - satisfy nlp.Tokeniser: call f on each token in turn
func (t TweetTokeniser) ForEachIn(text string, f func(token string)) {
	if t.ReduceLen {
		text = gen.ReduceLengthening(text, vv.REDUCELENMAX)
	}

	for _, tk := range tweettokens.FindAllString(text, -1) {
		if t.StripHandles && ishandle.MatchString(tk) {
			continue
		}
		if !t.PreserveCase && !isemoticon.MatchString(tk) {
			tk = strings.ToLower(tk)
		}
		f(tk)
	}
}
