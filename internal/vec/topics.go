//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/TweetTopics/internal/gph"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/nlp"
	"gonum.org/v1/gonum/mat"
)

// TopicModel - a fitted model: topics x vocabulary
type TopicModel interface {
	Components() mat.Matrix
}

// featurenames - the vocabulary in column order
func featurenames(vectoriser *nlp.CountVectoriser) []string {
	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}
	return vocab
}

// docpertopic - N documents have topic X as their dominant topic
func docpertopic(ntopics int, docsOverTopics mat.Matrix) []int {
	counter := make([]int, ntopics)
	first, _, _, _ := gph.DominantTopics(docsOverTopics)
	for _, t := range first {
		if t >= 0 && t < ntopics {
			counter[t] += 1
		}
	}
	return counter
}

// docbyweight - scaled total accumulated weight of each topic
func docbyweight(ntopics int, docsOverTopics mat.Matrix) []float64 {
	counter := make([]float64, ntopics)
	dr, dc := docsOverTopics.Dims()
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr && topic < ntopics; topic++ {
			// any given corpus[doc] will look like
			// Topic #0=0.006009, Topic #1=0.006915, Topic #2=0.000688, Topic #3=0.449514, Topic #4=0.536875
			counter[topic] += docsOverTopics.At(topic, doc)
		}
	}

	high := float64(0)
	for _, c := range counter {
		if c > high {
			high = c
		}
	}

	scaled := make([]float64, ntopics)
	if high == 0 {
		return scaled
	}
	for i := 0; i < ntopics; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// buildtopics - top words plus the document statistics for each topic
func buildtopics(tw [][]str.WeightedWord, docsOverTopics mat.Matrix) []str.Topic {
	nt := len(tw)
	_, dc := docsOverTopics.Dims()
	dpt := docpertopic(nt, docsOverTopics)
	dbw := docbyweight(nt, docsOverTopics)

	topics := make([]str.Topic, nt)
	for i := 0; i < nt; i++ {
		share := float64(0)
		if dc > 0 {
			share = float64(dpt[i]) / float64(dc) * 100
		}
		topics[i] = str.Topic{
			Number:       i + 1,
			Words:        tw[i],
			DocCount:     dpt[i],
			DocShare:     share,
			ScaledWeight: dbw[i] * 100,
		}
	}
	return topics
}
