//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import "strings"

//
// STRINGS and []RUNE
//

// Purgechars - drop any of the chars in the bad-string from the check-string
func Purgechars(bad string, checking string) string {
	if !strings.ContainsAny(checking, bad) {
		return checking
	}

	rb := []rune(bad)
	reducer := make(map[rune]bool, len(rb))
	for _, r := range rb {
		reducer[r] = true
	}

	var sb strings.Builder
	sb.Grow(len(checking))
	for _, x := range checking {
		if _, skip := reducer[x]; !skip {
			sb.WriteRune(x)
		}
	}
	return sb.String()
}

// ReduceLengthening - any run of the same rune that is longer than max is cut down to max: "waaaaay" -> "waaay"
func ReduceLengthening(s string, max int) string {
	rr := []rune(s)
	if len(rr) <= max {
		return s
	}

	out := make([]rune, 0, len(rr))
	run := 0
	for i, r := range rr {
		if i > 0 && rr[i-1] == r {
			run++
		} else {
			run = 1
		}
		if run <= max {
			out = append(out, r)
		}
	}
	return string(out)
}
