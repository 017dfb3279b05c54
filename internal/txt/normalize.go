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
// TWEET NORMALIZATION
//

// RE2 keeps \w and \S to ASCII: handles and tags are spelled out as unicode classes

var (
	retweetword = regexp.MustCompile(`\brt\b`)
	retweetany  = regexp.MustCompile(`rt`)
	mention     = regexp.MustCompile(`@[\p{L}\p{M}\p{N}_]+`)
	hyperlink   = regexp.MustCompile(`http[^\s\p{Z}]+`)
	wwwlink     = regexp.MustCompile(`www.[^ ]+`)
	hashtag     = regexp.MustCompile(`#[\p{L}\p{M}\p{N}_]+`)
	digits      = regexp.MustCompile(`[0-9]+`)
)

// Normalizer - the settings for a normalization pass; the zero value deletes mentions, links, and hashtags
type Normalizer struct {
	Placeholders bool // swap in vv.MENTIONPLACEHOLDER, etc. instead of deleting
	LegacyRT     bool // strip "rt" wherever it occurs: "start" -> "sta"
}

// Normalize - lowercase the text and strip retweet markers, mentions, links, hashtags, digits, and symbols
func Normalize(text string, usePlaceholders bool) string {
	return Normalizer{Placeholders: usePlaceholders}.Normalize(text)
}

// Normalize - see Normalize(); whitespace is never collapsed
func (n Normalizer) Normalize(text string) string {
	s := strings.ToLower(text)

	if n.LegacyRT {
		s = retweetany.ReplaceAllString(s, "")
	} else {
		s = retweetword.ReplaceAllString(s, "")
	}

	m, u, h := "", "", ""
	if n.Placeholders {
		m, u, h = vv.MENTIONPLACEHOLDER, vv.URLPLACEHOLDER, vv.HASHPLACEHOLDER
	}

	// order matters: "http://x.co/#frag" is a link before it is a hashtag
	s = mention.ReplaceAllLiteralString(s, m)
	s = hyperlink.ReplaceAllLiteralString(s, u)
	s = wwwlink.ReplaceAllLiteralString(s, u)
	s = hashtag.ReplaceAllLiteralString(s, h)

	s = digits.ReplaceAllString(s, "")
	return gen.Purgechars(vv.STRIPSYMBOLS, s)
}
