//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gph

import (
	"errors"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/mm"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
	"io"
	"math"
	"sort"
)

var (
	Msg = mm.NewMessageMaker()

	ErrComponents = errors.New("the number of topics must be an even number no smaller than 2")
	ErrTopWords   = errors.New("the number of top words must be at least 1")
	ErrFeatures   = errors.New("the feature names do not match the columns of the model")
)

// Model - anything with a topics x vocabulary weight matrix
type Model interface {
	Components() mat.Matrix
}

// Plotter - chart sizing; the zero value falls back to the vv defaults
type Plotter struct {
	Width  string
	Height string
}

// PlotTopWords - a 2 x nComp/2 grid of horizontal bar charts: the nTop heaviest features of each topic
func PlotTopWords(model Model, features []string, nTop int, nComp int, title string, w io.Writer) error {
	return Plotter{}.PlotTopWords(model, features, nTop, nComp, title, w)
}

// PlotTopWords - see PlotTopWords()
func (pl Plotter) PlotTopWords(model Model, features []string, nTop int, nComp int, title string, w io.Writer) error {
	const (
		MSG1 = "PlotTopWords() drew %d topic charts"
	)

	if nComp < 2 || nComp%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrComponents, nComp)
	}

	tw, err := TopWords(model, features, nTop)
	if err != nil {
		return err
	}
	if nComp < len(tw) {
		tw = tw[:nComp]
	}

	p := components.NewPage()
	p.PageTitle = title

	for i := range tw {
		bar := pl.topicbar(i, tw[i])
		bar.Validate()
		assets := bar.GetAssets()
		for _, v := range assets.JSAssets.Values {
			p.JSAssets.Add(v)
		}
		for _, v := range assets.CSSAssets.Values {
			p.CSSAssets.Add(v)
		}
		p.Charts = append(p.Charts, bar)
	}

	if err = renderpage(p, title, nComp/2, w); err != nil {
		return err
	}
	Msg.PEEK(fmt.Sprintf(MSG1, len(tw)))
	return nil
}

// topicbar - a horizontal bar chart for a single topic
func (pl Plotter) topicbar(idx int, words []str.WeightedWord) *charts.Bar {
	const (
		TITLESTR = "Topic %d"
		CHARTID  = "ttptopic%d"
		SERIES   = "weight"
		BARCOLOR = "hsla(236, 33%, 40%, 1)"
		SAVETYPE = "png"
		SAVESTR  = "Save to file..."
		LABELJS  = "goecharts_%s.setOption({grid: {containLabel: true}});"
	)

	wd, ht := pl.Width, pl.Height
	if wd == "" {
		wd = vv.DEFAULTCHRTWIDTH
	}
	if ht == "" {
		ht = vv.DEFAULTCHRTHEIGHT
	}
	id := fmt.Sprintf(CHARTID, idx+1)

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  fmt.Sprintf(TITLESTR, idx+1),
		Title: SAVESTR,
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: wd, Height: ht, ChartID: id}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf(TITLESTR, idx+1)}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true, Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs}}),
	)

	// a category y-axis draws its first entry at the bottom: feed the lightest word first so the heaviest is on top
	n := len(words)
	labels := make([]string, n)
	data := make([]opts.BarData, n)
	for i := 0; i < n; i++ {
		ww := words[n-1-i]
		labels[i] = ww.Word
		data[i] = opts.BarData{Value: round(ww.Weight), ItemStyle: &opts.ItemStyle{Color: BARCOLOR}}
	}

	bar.SetXAxis(labels).AddSeries(SERIES, data)
	bar.XYReversal()
	bar.JSFunctions.Fns = append(bar.JSFunctions.Fns, fmt.Sprintf(LABELJS, id))
	return bar
}

// TopWords - for each topic the n heaviest features in descending order of weight
func TopWords(model Model, features []string, n int) ([][]str.WeightedWord, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTopWords, n)
	}

	comp := model.Components()
	tr, tc := comp.Dims()
	if tc != len(features) {
		return nil, fmt.Errorf("%w: %d columns vs %d names", ErrFeatures, tc, len(features))
	}

	top := n
	if top > tc {
		top = tc
	}

	tops := make([][]str.WeightedWord, tr)
	for topic := 0; topic < tr; topic++ {
		tss := make([]str.WeightedWord, tc)
		for word := 0; word < tc; word++ {
			tss[word] = str.WeightedWord{
				Word:   features[word],
				Weight: comp.At(topic, word),
			}
		}
		sort.SliceStable(tss, func(i, j int) bool {
			return tss[i].Weight > tss[j].Weight
		})
		tops[topic] = tss[0:top]
	}
	return tops, nil
}

func round(val float64) float64 {
	const (
		PRECISON = 4
	)
	ratio := math.Pow(10, float64(PRECISON))
	return math.Round(val*ratio) / ratio
}
