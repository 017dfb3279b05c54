//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/gen"
	"github.com/e-gun/TweetTopics/internal/gph"
	"github.com/e-gun/TweetTopics/internal/mm"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/txt"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/e-gun/nlp"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/mat"
	"slices"
	"time"
)

var (
	Msg = mm.NewMessageMaker()

	ErrComponents      = gph.ErrComponents
	ErrTopWords        = gph.ErrTopWords
	ErrEmptyCorpus     = errors.New("the corpus has no documents")
	ErrEmptyVocabulary = errors.New("nothing survived tokenizing: the vocabulary is empty")
	ErrModel           = errors.New("unknown topic model")
)

const (
	STAGEPREP  = "preprocessing"
	STAGEVECT  = "vectorizing"
	STAGEFIT   = "fitting"
	STAGECHART = "charting"
	STAGEDONE  = "done"
)

// DefaultTopicParams - the stock settings for a run
func DefaultTopicParams() str.TopicParams {
	return str.TopicParams{
		Samples:     vv.DEFAULTSAMPLES,
		Features:    vv.DEFAULTFEATURES,
		Components:  vv.DEFAULTCOMPONENTS,
		TopWords:    vv.DEFAULTTOPWORDS,
		Preprocess:  true,
		StopWords:   txt.English,
		Model:       vv.DEFAULTMODEL,
		LDA:         DefaultLDA(),
		GSDMM:       DefaultGSDMM(),
		Title:       vv.DEFAULTTITLE,
		ChartWidth:  vv.DEFAULTCHRTWIDTH,
		ChartHeight: vv.DEFAULTCHRTHEIGHT,
	}
}

// ValidateParams - the checks ExtractTopics() runs before doing any work
func ValidateParams(p str.TopicParams) error {
	if p.Components < 2 || p.Components%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrComponents, p.Components)
	}
	if p.TopWords < 1 {
		return fmt.Errorf("%w: got %d", ErrTopWords, p.TopWords)
	}
	if p.Model != "" && !slices.Contains(vv.KnownModels, p.Model) {
		return fmt.Errorf("%w: '%s'", ErrModel, p.Model)
	}
	return nil
}

// PrepareCorpus - join each document's fragments and, if asked, normalize the result
func PrepareCorpus(ctx context.Context, corpus []str.Document, p str.TopicParams) ([]string, error) {
	nz := txt.Normalizer{Placeholders: p.Placeholders, LegacyRT: p.LegacyRT}
	prepared := make([]string, len(corpus))
	for i := range corpus {
		if i%vv.PROGRESSEVERY == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			progress(p, STAGEPREP, i, len(corpus))
		}
		prepared[i] = gen.JoinStrings(corpus[i])
		if p.Preprocess {
			prepared[i] = nz.Normalize(prepared[i])
		}
	}
	progress(p, STAGEPREP, len(corpus), len(corpus))
	return prepared, nil
}

// ExtractTopics - clean and vectorize the corpus, fit a topic model, and chart the top words of each topic
func ExtractTopics(ctx context.Context, corpus []str.Document, p str.TopicParams) (*str.TopicReport, error) {
	const (
		MSG1 = "preprocessing..."
		MSG2 = "elapsed: %.3fs"
		MSG3 = "vectorizing..."
		MSG4 = "LDA: n_samples: %d; n_features: %d; vocabulary: %d; documents: %d"
		MSG5 = "fitting %s with %d topics"
		MSG6 = "charted %d topics"
		TMR1 = "preprocessed %d documents"
		TMR2 = "vectorized %d documents"
		TMR3 = "fitted the %s model"
		FAIL = "ExtractTopics() failed at the %s stage: %w"
	)

	if err := ValidateParams(p); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	p = fillparams(p)
	pr := message.NewPrinter(language.English)

	start := time.Now()
	previous := time.Now()

	if p.RunID == "" {
		p.RunID = uuid.New().String()
	}

	rep := &str.TopicReport{
		ID:         p.RunID,
		Title:      p.Title,
		Model:      p.Model,
		Created:    start,
		Samples:    p.Samples,
		Features:   p.Features,
		Components: p.Components,
		TopWords:   p.TopWords,
		Documents:  len(corpus),
	}

	stamp := func(stage string, letter string, o string) {
		rep.Timings = append(rep.Timings, str.StageTiming{Stage: stage, Seconds: time.Since(previous).Seconds()})
		Msg.Timer(letter, o, start, previous)
		previous = time.Now()
	}

	// [a] preprocess

	if p.Preprocess {
		Msg.NOTE(MSG1)
	}
	cleaned, err := PrepareCorpus(ctx, corpus, p)
	if err != nil {
		return nil, fmt.Errorf(FAIL, STAGEPREP, err)
	}
	if p.Preprocess {
		Msg.NOTE(fmt.Sprintf(MSG2, time.Since(previous).Seconds()))
	}
	stamp(STAGEPREP, "A1", pr.Sprintf(TMR1, len(cleaned)))

	// [b] vectorize

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf(FAIL, STAGEVECT, err)
	}
	Msg.NOTE(MSG3)
	progress(p, STAGEVECT, 0, 0)

	vectoriser := nlp.NewCountVectoriser()
	vectoriser.Tokeniser = NGramTokeniser{
		Base:       vectorbase(p.Tokenizer),
		Stops:      txt.StopSet(txt.VectorStops(p.StopWords)),
		Lemmatizer: p.Lemmatizer,
		MinN:       vv.NGRAMMIN,
		MaxN:       vv.NGRAMMAX,
	}

	// fit first: an empty vocabulary would hand Transform() a matrix with no rows
	vectoriser.Fit(cleaned...)
	if len(vectoriser.Vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	tdm, err := vectoriser.Transform(cleaned...)
	if err != nil {
		return nil, fmt.Errorf(FAIL, STAGEVECT, err)
	}
	Msg.NOTE(fmt.Sprintf(MSG2, time.Since(previous).Seconds()))
	stamp(STAGEVECT, "A2", pr.Sprintf(TMR2, len(cleaned)))

	rep.Vocabulary = len(vectoriser.Vocabulary)
	Msg.NOTE(pr.Sprintf(MSG4, p.Samples, p.Features, rep.Vocabulary, len(cleaned)))

	// [c] fit

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf(FAIL, STAGEFIT, err)
	}
	Msg.FYI(fmt.Sprintf(MSG5, p.Model, p.Components))
	progress(p, STAGEFIT, 0, 0)

	var docsOverTopics mat.Matrix
	var model TopicModel
	switch p.Model {
	case "gsdmm":
		docsOverTopics, model, err = gsdmmmodel(p.Components, cleaned, vectoriser, p.GSDMM)
	default:
		docsOverTopics, model, err = ldamodel(p.Components, tdm, p.LDA)
	}
	if err != nil {
		return nil, fmt.Errorf(FAIL, STAGEFIT, err)
	}
	stamp(STAGEFIT, "A3", fmt.Sprintf(TMR3, p.Model))

	// [d] report and chart

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf(FAIL, STAGECHART, err)
	}
	progress(p, STAGECHART, 0, 0)

	features := featurenames(vectoriser)
	tw, err := gph.TopWords(model, features, p.TopWords)
	if err != nil {
		return nil, fmt.Errorf(FAIL, STAGECHART, err)
	}
	rep.Topics = buildtopics(tw, docsOverTopics)

	plotter := gph.Plotter{Width: p.ChartWidth, Height: p.ChartHeight}

	var buf bytes.Buffer
	if err = plotter.PlotTopWords(model, features, p.TopWords, p.Components, p.Title, &buf); err != nil {
		return nil, fmt.Errorf(FAIL, STAGECHART, err)
	}
	rep.Chart = buf.Bytes()

	if p.DocMap {
		var mb bytes.Buffer
		if err = (gph.Plotter{}).PlotDocumentMap(docsOverTopics, docmaplabels(corpus), p.Title, &mb); err != nil {
			return nil, fmt.Errorf(FAIL, STAGECHART, err)
		}
		rep.DocMap = mb.Bytes()
	}
	stamp(STAGECHART, "A4", fmt.Sprintf(MSG6, len(rep.Topics)))
	progress(p, STAGEDONE, len(corpus), len(corpus))

	return rep, nil
}

// fillparams - swap zero values for defaults
func fillparams(p str.TopicParams) str.TopicParams {
	if p.Model == "" {
		p.Model = vv.DEFAULTMODEL
	}
	if p.Title == "" {
		p.Title = vv.DEFAULTTITLE
	}
	if p.StopWords == nil {
		p.StopWords = txt.English
	}
	if p.LDA == (str.LDAConfig{}) {
		p.LDA = DefaultLDA()
	}
	if p.GSDMM == (str.GSDMMConfig{}) {
		p.GSDMM = DefaultGSDMM()
	}
	return p
}

// vectorbase - the vectoriser always folds case, shortens lengthening, and drops handles
func vectorbase(tk txt.Tokenizer) txt.Tokenizer {
	if tk == nil {
		return txt.NewTweetTokeniser()
	}
	return tk
}

func docmaplabels(corpus []str.Document) []string {
	labels := make([]string, len(corpus))
	for i := range corpus {
		labels[i] = gen.JoinStrings(corpus[i])
	}
	return labels
}

func progress(p str.TopicParams, stage string, done int, total int) {
	if p.Progress != nil {
		p.Progress(stage, done, total)
	}
}
