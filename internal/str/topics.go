//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"github.com/e-gun/TweetTopics/internal/txt"
	"time"
)

// Document - one raw document as one or more fragments of text
type Document []string

// ProgressFunc - called as a run moves through its stages; total is 0 when unknown
type ProgressFunc func(stage string, done int, total int)

// LDAConfig - see nlp.LatentDirichletAllocation
type LDAConfig struct {
	Iterations           int    `json:"iterations" yaml:"iterations"`
	BatchSize            int    `json:"batchsize" yaml:"batchsize"`
	BurnInPasses         int    `json:"burninpasses" yaml:"burninpasses"`
	TransformationPasses int    `json:"transformationpasses" yaml:"transformationpasses"`
	LearningOffset       int    `json:"learningoffset" yaml:"learningoffset"` // RhoPhi.Tau
	Seed                 uint64 `json:"seed" yaml:"seed"`
	Processes            int    `json:"processes" yaml:"processes"`
}

// GSDMMConfig - Gibbs sampling settings for the Dirichlet multinomial mixture
type GSDMMConfig struct {
	Iterations int     `json:"iterations" yaml:"iterations"`
	Alpha      float64 `json:"alpha" yaml:"alpha"` // pull toward populous clusters
	Beta       float64 `json:"beta" yaml:"beta"`   // pull toward clusters with the same words
	Seed       uint64  `json:"seed" yaml:"seed"`
}

type TopicParams struct {
	RunID        string // a fresh uuid if blank
	Samples      int    // reported, not enforced
	Features     int    // reported, not enforced
	Components   int
	TopWords     int
	Preprocess   bool
	Placeholders bool
	LegacyRT     bool
	StopWords    []string
	Lemmatizer   txt.Lemmatizer
	Tokenizer    txt.Tokenizer
	Model        string
	LDA          LDAConfig
	GSDMM        GSDMMConfig
	Title        string
	ChartWidth   string
	ChartHeight  string
	DocMap       bool
	Progress     ProgressFunc
}

type WeightedWord struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

type Topic struct {
	Number       int            `json:"number"` // 1-based
	Words        []WeightedWord `json:"words"`
	DocCount     int            `json:"doccount"`     // documents with this as their dominant topic
	DocShare     float64        `json:"docshare"`     // DocCount as a percentage of all documents
	ScaledWeight float64        `json:"scaledweight"` // accumulated weight relative to the heaviest topic
}

type StageTiming struct {
	Stage   string  `json:"stage"`
	Seconds float64 `json:"seconds"`
}

type TopicReport struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Model      string        `json:"model"`
	Created    time.Time     `json:"created"`
	Samples    int           `json:"samples"`
	Features   int           `json:"features"`
	Components int           `json:"components"`
	TopWords   int           `json:"topwords"`
	Documents  int           `json:"documents"`
	Vocabulary int           `json:"vocabulary"`
	Topics     []Topic       `json:"topics"`
	Timings    []StageTiming `json:"timings"`
	Chart      []byte        `json:"-"`
	DocMap     []byte        `json:"-"`
}
