//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gph

import (
	"fmt"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
	"io"
)

// DominantTopics - for each document (a column of docsOverTopics) the best and second-best topic and their weights
func DominantTopics(docsOverTopics mat.Matrix) (first []int, second []int, w1 []float64, w2 []float64) {
	dr, dc := docsOverTopics.Dims() // rows = topics; columns = documents
	first = make([]int, dc)
	second = make([]int, dc)
	w1 = make([]float64, dc)
	w2 = make([]float64, dc)
	if dr == 0 {
		return
	}

	for doc := 0; doc < dc; doc++ {
		best, next := -1, -1
		for topic := 0; topic < dr; topic++ {
			v := docsOverTopics.At(topic, doc)
			switch {
			case best < 0 || v > docsOverTopics.At(best, doc):
				next = best
				best = topic
			case next < 0 || v > docsOverTopics.At(next, doc):
				next = topic
			}
		}
		first[doc] = best
		w1[doc] = docsOverTopics.At(best, doc)
		second[doc] = next
		if next >= 0 {
			w2[doc] = docsOverTopics.At(next, doc)
		}
	}
	return
}

// PlotDocumentMap - a scatter of the documents: x is the weight of the dominant topic, y the weight of the runner-up
func PlotDocumentMap(docsOverTopics mat.Matrix, labels []string, title string, w io.Writer) error {
	return Plotter{}.PlotDocumentMap(docsOverTopics, labels, title, w)
}

// PlotDocumentMap - see PlotDocumentMap(); one series per topic so that each topic gets its own color
func (pl Plotter) PlotDocumentMap(docsOverTopics mat.Matrix, labels []string, title string, w io.Writer) error {
	const (
		CHRTWIDTH  = "1200px"
		CHRTHEIGHT = "900px"
		SERIESNAME = "Topic %d"
		XNAME      = "dominant topic weight"
		YNAME      = "second topic weight"
		SYMSIZE    = 8
		MAXLABEL   = 80
		MSG1       = "PlotDocumentMap() placed %d documents"
	)

	dr, dc := docsOverTopics.Dims()
	if len(labels) != 0 && len(labels) != dc {
		return fmt.Errorf("%w: %d documents vs %d labels", ErrFeatures, dc, len(labels))
	}

	wd, ht := pl.Width, pl.Height
	if wd == "" {
		wd = CHRTWIDTH
	}
	if ht == "" {
		ht = CHRTHEIGHT
	}

	first, _, w1, w2 := DominantTopics(docsOverTopics)

	bytopic := make([][]opts.ScatterData, dr)
	for doc := 0; doc < dc; doc++ {
		nm := fmt.Sprintf("#%d", doc+1)
		if len(labels) != 0 {
			nm = trimlabel(labels[doc], MAXLABEL)
		}
		bytopic[first[doc]] = append(bytopic[first[doc]], opts.ScatterData{
			Name:       nm,
			Value:      []interface{}{round(w1[doc]), round(w2[doc])},
			SymbolSize: SYMSIZE,
		})
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: wd, Height: ht}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: true, Right: "5%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: XNAME, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: YNAME, Type: "value"}),
	)

	for topic := 0; topic < dr; topic++ {
		sc.AddSeries(fmt.Sprintf(SERIESNAME, topic+1), bytopic[topic])
	}
	sc.Validate()

	p := components.NewPage()
	p.PageTitle = title
	for _, v := range sc.GetAssets().JSAssets.Values {
		p.JSAssets.Add(v)
	}
	p.Charts = append(p.Charts, sc)

	if err := renderpage(p, "", 1, w); err != nil {
		return err
	}
	Msg.PEEK(fmt.Sprintf(MSG1, dc))
	return nil
}

func trimlabel(s string, max int) string {
	rr := []rune(s)
	if len(rr) <= max {
		return s
	}
	return string(rr[:max]) + "…"
}
