//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"errors"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/e-gun/nlp"
	"github.com/xtgo/set"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"math"
)

// GSDMM: the Dirichlet multinomial mixture for short texts; each document belongs to exactly one cluster
// see Yin & Wang (2014), "A Dirichlet Multinomial Mixture Model-based Approach for Short Text Clustering"

var ErrGSDMM = errors.New("gsdmm needs at least one cluster and one vocabulary entry")

func DefaultGSDMM() str.GSDMMConfig {
	return str.GSDMMConfig{
		Iterations: vv.GSDMMITER,
		Alpha:      vv.GSDMMALPHA,
		Beta:       vv.GSDMMBETA,
		Seed:       vv.GSDMMSEED,
	}
}

// clustermodel - the word counts of each cluster stand in for the lda components
type clustermodel struct {
	comps *mat.Dense
}

func (c clustermodel) Components() mat.Matrix { return c.comps }

// gsdmmdocuments - each document as the sorted set of its vocabulary ids; the vectoriser must already be fitted
func gsdmmdocuments(corpus []string, vectoriser *nlp.CountVectoriser) [][]int {
	ids := make([][]int, len(corpus))
	for i := range corpus {
		var ts []int
		vectoriser.Tokeniser.ForEachIn(corpus[i], func(w string) {
			if id, ok := vectoriser.Vocabulary[w]; ok {
				ts = append(ts, id)
			}
		})
		ids[i] = set.Ints(ts) // this uniquifies the document
	}
	return ids
}

// dmm - the sampler state
type dmm struct {
	k, nv       int
	alpha, beta float64
	z           []int   // cluster of each document
	m           []int   // documents per cluster
	n           []int   // words per cluster
	nw          [][]int // cluster x word counts
	rnd         *rand.Rand
	lp          []float64
}

func newdmm(k int, nv int, cfg str.GSDMMConfig) *dmm {
	d := &dmm{
		k:     k,
		nv:    nv,
		alpha: cfg.Alpha,
		beta:  cfg.Beta,
		m:     make([]int, k),
		n:     make([]int, k),
		nw:    make([][]int, k),
		rnd:   rand.New(rand.NewSource(cfg.Seed)),
		lp:    make([]float64, k),
	}
	for i := range d.nw {
		d.nw[i] = make([]int, nv)
	}
	return d
}

func (d *dmm) add(c int, doc []int, sign int) {
	d.m[c] += sign
	d.n[c] += sign * len(doc)
	for _, w := range doc {
		d.nw[c][w] += sign
	}
}

// pick - sample a cluster for doc from the conditional distribution, worked in log space
func (d *dmm) pick(doc []int, ndocs int) int {
	vb := float64(d.nv) * d.beta
	norm := math.Log(float64(ndocs-1) + float64(d.k)*d.alpha)
	maxlp := math.Inf(-1)
	for c := 0; c < d.k; c++ {
		lp := math.Log(float64(d.m[c])+d.alpha) - norm
		for _, w := range doc {
			lp += math.Log(float64(d.nw[c][w]) + d.beta)
		}
		for i := 0; i < len(doc); i++ {
			lp -= math.Log(float64(d.n[c]) + vb + float64(i))
		}
		d.lp[c] = lp
		if lp > maxlp {
			maxlp = lp
		}
	}

	total := 0.0
	for c := range d.lp {
		d.lp[c] = math.Exp(d.lp[c] - maxlp)
		total += d.lp[c]
	}

	r := d.rnd.Float64() * total
	for c := range d.lp {
		r -= d.lp[c]
		if r <= 0 {
			return c
		}
	}
	return d.k - 1
}

// fit - random initial clusters and then cfg.Iterations sweeps of collapsed Gibbs sampling
func (d *dmm) fit(docs [][]int, iterations int) {
	d.z = make([]int, len(docs))
	for i, doc := range docs {
		d.z[i] = d.rnd.Intn(d.k)
		d.add(d.z[i], doc, 1)
	}

	for it := 0; it < iterations; it++ {
		moved := 0
		for i, doc := range docs {
			d.add(d.z[i], doc, -1)
			c := d.pick(doc, len(docs))
			if c != d.z[i] {
				moved++
			}
			d.z[i] = c
			d.add(c, doc, 1)
		}
		if moved == 0 {
			break
		}
	}
}

// gsdmmmodel - cluster the documents; the vectoriser must already be fitted
func gsdmmmodel(k int, corpus []string, vectoriser *nlp.CountVectoriser, cfg str.GSDMMConfig) (mat.Matrix, TopicModel, error) {
	if cfg.Iterations < 1 {
		cfg = DefaultGSDMM()
	}

	nv := len(vectoriser.Vocabulary)
	if k < 1 || nv < 1 {
		return nil, nil, ErrGSDMM
	}

	docs := gsdmmdocuments(corpus, vectoriser)
	d := newdmm(k, nv, cfg)
	d.fit(docs, cfg.Iterations)

	comps := mat.NewDense(k, nv, nil)
	docsOverTopics := mat.NewDense(k, len(docs), nil)
	for i, c := range d.z {
		docsOverTopics.Set(c, i, 1)
		for _, w := range docs[i] {
			comps.Set(c, w, comps.At(c, w)+1)
		}
	}

	return docsOverTopics, clustermodel{comps: comps}, nil
}
