//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/gen"
	"github.com/e-gun/TweetTopics/internal/vv"
	"os"
	"path/filepath"
)

//
// STOPWORDS
//

// ReadStopConfig - read vv.CONFIGSTOPS from dir and return []stopwords; if it does not exist, generate it
func ReadStopConfig(dir string) []string {
	const (
		ERR1 = "ReadStopConfig() failed to parse "
		ERR2 = "ReadStopConfig() could not write "
		MSG1 = "ReadStopConfig() wrote stop configuration file: "
	)

	stops := gen.SortedSetKeys(gen.ToSet(English))
	fn := filepath.Join(dir, vv.CONFIGSTOPS)

	if _, yes := os.Stat(fn); yes != nil {
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		if err != nil {
			return stops
		}
		if err = os.WriteFile(fn, content, vv.WRITEPERMS); err != nil {
			Msg.WARN(ERR2 + fn)
			return stops
		}
		Msg.PEEK(MSG1 + fn)
		return stops
	}

	raw, err := os.ReadFile(fn)
	var stp []string
	if err == nil {
		err = json.Unmarshal(raw, &stp)
	}
	if err != nil {
		Msg.CRIT(ERR1 + fn)
		return stops
	}
	return stp
}

// VectorStops - the standard list plus the corpus extras; handed to the vectoriser
func VectorStops(base []string) []string {
	return gen.Unique(append(append([]string{}, base...), vv.CorpusStops...))
}

// StopSet - a read-only set for Tokenize()
func StopSet(ss []string) map[string]struct{} {
	return gen.ToSet(ss)
}

// FetchStops - a stop list that is also in the config folder, if the home directory can be found
func FetchStops() []string {
	h, e := os.UserHomeDir()
	if e != nil {
		return gen.Unique(English)
	}
	dir := fmt.Sprintf(vv.CONFIGALTAPTH, h)
	if _, e = os.Stat(dir); e != nil {
		return gen.Unique(English)
	}
	return ReadStopConfig(dir)
}

var (
	// English - the standard english stop words
	English = []string{"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're", "you've",
		"you'll", "you'd", "your", "yours", "yourself", "yourselves", "he", "him", "his", "himself", "she", "she's",
		"her", "hers", "herself", "it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are", "was", "were",
		"be", "been", "being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an", "the", "and",
		"but", "if", "or", "because", "as", "until", "while", "of", "at", "by", "for", "with", "about", "against",
		"between", "into", "through", "during", "before", "after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then", "once", "here", "there", "when", "where",
		"why", "how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just", "don", "don't", "should",
		"should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
		"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't",
		"ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't",
		"wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't"}
)
