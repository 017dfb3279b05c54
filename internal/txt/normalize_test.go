//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"github.com/e-gun/TweetTopics/internal/vv"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ph   bool
		want string
	}{
		{"golden", "RT @bob check http://x.co #news 123!!!", false, "  check   "},
		{"golden with placeholders", "RT @bob check http://x.co #news 123!!!", true, " <-@-> check <-URL-> <-#-> "},
		{"www link", "www.example.com/page is cool", false, " is cool"},
		{"www placeholder", "www.example.com/page is cool", true, "<-URL-> is cool"},
		{"rt inside a word survives", "Start the party", false, "start the party"},
		{"symbols and digits", "a(b)c 42 [d]!", false, "abc  d"},
		{"empty", "", false, ""},
		{"keeps apostrophes and hyphens", "don't re-tweet", false, "don't re-tweet"},
		{"cyrillic hashtag", "vote #выборы2018 now", true, "vote <-#-> now"},
		{"cyrillic hashtag deleted", "vote #выборы2018 now", false, "vote  now"},
		{"accented mention", "hi @müller there", true, "hi <-@-> there"},
		{"accented hashtag", "#café au lait", true, "<-#-> au lait"},
		{"combining mark in a hashtag", "#cafe\u0301 au lait", true, "<-#-> au lait"},
		{"link ends at a no-break space", "x\u00a0http://a.b/c\u00a0y", true, "x\u00a0<-URL->\u00a0y"},
		{"link ends at an ideographic space", "見て http://a.b/c\u3000です", true, "見て <-URL->\u3000です"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in, tc.ph); got != tc.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tc.in, tc.ph, got, tc.want)
			}
		})
	}
}

func TestNormalizerLegacyRT(t *testing.T) {
	n := Normalizer{LegacyRT: true}
	if got := n.Normalize("Start the party"); got != "sta the pay" {
		t.Errorf("legacy rt stripping: got %q", got)
	}
	if got := n.Normalize("RT @bob check http://x.co #news 123!!!"); got != "  check   " {
		t.Errorf("legacy golden: got %q", got)
	}
}

func TestNormalizeInvariants(t *testing.T) {
	inputs := []string{
		"RT @alice: 50% off!!! see https://shop.example/deal?id=9 #sale #2024",
		"nothing to see here",
		"@a@b@c ###x www.a.b/c 1,000,000 (really) {ok} ~fin~",
		"Üñíçødé 123 tweets ... `quoted` |piped|",
		"RT @Jürgen_92 schaut #Ölpreis http://ex.de/ä\u00a0heute",
		"@пользователь #новости #東京 и всё",
	}
	for _, in := range inputs {
		for _, ph := range []bool{false, true} {
			out := Normalize(in, ph)
			if strings.ContainsAny(out, "0123456789") {
				t.Errorf("digits survived in %q", out)
			}
			if strings.ContainsAny(out, vv.STRIPSYMBOLS) {
				t.Errorf("symbols survived in %q", out)
			}
			if residue(out) {
				t.Errorf("mention, link, or hashtag survived in %q", out)
			}
			if out != strings.ToLower(out) && !ph {
				t.Errorf("output not lowercase: %q", out)
			}
		}
	}
}

// residue - a mention, link, or hashtag that a placeholder does not account for
func residue(s string) bool {
	for _, ph := range []string{vv.MENTIONPLACEHOLDER, vv.URLPLACEHOLDER, vv.HASHPLACEHOLDER} {
		s = strings.ReplaceAll(s, ph, " ")
	}
	return mention.MatchString(s) || hashtag.MatchString(s) || hyperlink.MatchString(s)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"RT @bob check http://x.co #news 123!!!",
		"Start the party",
		"hi @müller there",
		"vote #выборы2018 now",
		"a(b)c 42 [d]!",
		"don't re-tweet",
		"Üñíçødé tweets ... `quoted` |piped|",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in, false)
		if twice := Normalize(once, false); twice != once {
			t.Errorf("Normalize() is not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}
