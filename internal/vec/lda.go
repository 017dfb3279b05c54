//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/e-gun/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"runtime"
)

//see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go
//DefaultLDA = nlp.LatentDirichletAllocation{
//	Iterations:                    1000,
//	PerplexityTolerance:           1e-2,
//	PerplexityEvaluationFrequency: 30,
//	BatchSize:                     100,
//	K:                             k,
//	BurnInPasses:                  1,
//	TransformationPasses:          500,
//	MeanChangeTolerance:           1e-5,
//	ChangeEvaluationFrequency:     30,
//	Alpha:                         0.1,
//	Eta:                           0.01,
//	RhoPhi: LearningSchedule{
//		S:     10,
//		Tau:   1000,
//		Kappa: 0.9,
//	},
//	RhoTheta: LearningSchedule{
//		S:     1,
//		Tau:   10,
//		Kappa: 0.9,
//	},
//	rhoPhiT:   1,
//	rhoThetaT: 1,
//	Rnd:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
//	Processes: runtime.GOMAXPROCS(0),
//}

// DefaultLDA - online learning, learning offset 50, five iterations, seed 0
func DefaultLDA() str.LDAConfig {
	return str.LDAConfig{
		Iterations:           vv.LDAITER,
		BatchSize:            vv.LDABATCHSIZE,
		BurnInPasses:         vv.LDABURNINPASSES,
		TransformationPasses: vv.LDAXFORMPASSES,
		LearningOffset:       vv.LDALEARNINGOFFSET,
		Seed:                 vv.LDASEED,
		Processes:            runtime.NumCPU(),
	}
}

// newlda - an nlp.LatentDirichletAllocation configured from cfg; zero values keep the nlp defaults
func newlda(k int, cfg str.LDAConfig) *nlp.LatentDirichletAllocation {
	lda := nlp.NewLatentDirichletAllocation(k)
	if cfg.Iterations > 0 {
		lda.Iterations = cfg.Iterations
	}
	if cfg.BatchSize > 0 {
		lda.BatchSize = cfg.BatchSize
	}
	if cfg.BurnInPasses > 0 {
		lda.BurnInPasses = cfg.BurnInPasses
	}
	if cfg.TransformationPasses > 0 {
		lda.TransformationPasses = cfg.TransformationPasses
	}
	if cfg.LearningOffset > 0 {
		lda.RhoPhi.Tau = float64(cfg.LearningOffset)
	}
	if cfg.Processes > 0 {
		lda.Processes = cfg.Processes
	}
	lda.Rnd = rand.New(rand.NewSource(cfg.Seed))
	return lda
}

// ldamodel - fit the lda model to the term-document matrix
func ldamodel(k int, tdm mat.Matrix, cfg str.LDAConfig) (mat.Matrix, TopicModel, error) {
	lda := newlda(k, cfg)
	docsOverTopics, err := lda.FitTransform(tdm)
	if err != nil {
		return nil, nil, err
	}
	return docsOverTopics, lda, nil
}
