//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gph

import (
	"bytes"
	"errors"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
	"reflect"
	"strings"
	"testing"
)

type fixedmodel struct {
	m *mat.Dense
}

func (f fixedmodel) Components() mat.Matrix { return f.m }

func testmodel() fixedmodel {
	// 4 topics x 5 words
	return fixedmodel{m: mat.NewDense(4, 5, []float64{
		0.1, 0.9, 0.3, 0.0, 0.5,
		0.8, 0.1, 0.1, 0.2, 0.0,
		0.0, 0.0, 0.0, 1.0, 0.4,
		0.3, 0.3, 0.7, 0.1, 0.2,
	})}
}

var testfeatures = []string{"apple", "banana", "cherry", "date", "elder berry"}

func TestTopWords(t *testing.T) {
	tw, err := TopWords(testmodel(), testfeatures, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tw) != 4 {
		t.Fatalf("expected 4 topics, got %d", len(tw))
	}

	want := []string{"banana", "elder berry", "cherry"}
	for i, w := range want {
		if tw[0][i].Word != w {
			t.Errorf("topic 1 word %d: expected %s, got %s", i, w, tw[0][i].Word)
		}
	}

	for topic := range tw {
		for i := 1; i < len(tw[topic]); i++ {
			if tw[topic][i].Weight > tw[topic][i-1].Weight {
				t.Errorf("topic %d is not in descending order: %v", topic+1, tw[topic])
			}
		}
	}
}

func TestTopWordsCapsAtVocabulary(t *testing.T) {
	tw, err := TopWords(testmodel(), testfeatures, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tw[0]) != len(testfeatures) {
		t.Errorf("expected %d words, got %d", len(testfeatures), len(tw[0]))
	}
}

func TestTopWordsErrors(t *testing.T) {
	if _, err := TopWords(testmodel(), testfeatures, 0); !errors.Is(err, ErrTopWords) {
		t.Errorf("expected ErrTopWords, got %v", err)
	}
	if _, err := TopWords(testmodel(), testfeatures[:2], 3); !errors.Is(err, ErrFeatures) {
		t.Errorf("expected ErrFeatures, got %v", err)
	}
}

func TestPlotTopWords(t *testing.T) {
	var b bytes.Buffer
	if err := PlotTopWords(testmodel(), testfeatures, 3, 4, "Categories in LDA model", &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := b.String()
	for _, want := range []string{"Categories in LDA model", "Topic 1", "Topic 4", "repeat(2, 1fr)", "echarts.min.js"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in the rendered page", want)
		}
	}
	if strings.Contains(html, "__f__") {
		t.Error("function markers were not stripped")
	}
}

func TestTopicBarPutsHeaviestWordOnTop(t *testing.T) {
	words := []str.WeightedWord{{Word: "cats", Weight: 0.9}, {Word: "purr", Weight: 0.5}, {Word: "nap", Weight: 0.1}}

	tests := []struct {
		name   string
		words  []str.WeightedWord
		labels []string
		values []float64
	}{
		{"three", words, []string{"nap", "purr", "cats"}, []float64{0.1, 0.5, 0.9}},
		{"one", words[:1], []string{"cats"}, []float64{0.9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := Plotter{}.topicbar(0, tc.words)
			bar.Validate()

			// the reversed chart draws its categories up the y-axis: the last entry is the top bar
			if got := bar.YAxisList[0].Data; !reflect.DeepEqual(got, tc.labels) {
				t.Errorf("y-axis labels = %v, want %v", got, tc.labels)
			}
			if bar.XAxisList[0].Data != nil {
				t.Errorf("x-axis should carry no categories: %v", bar.XAxisList[0].Data)
			}

			data, ok := bar.MultiSeries[0].Data.([]opts.BarData)
			if !ok || len(data) != len(tc.values) {
				t.Fatalf("unexpected series data: %#v", bar.MultiSeries[0].Data)
			}
			for i, bd := range data {
				if bd.Value != tc.values[i] {
					t.Errorf("bar %d = %v, want %v", i, bd.Value, tc.values[i])
				}
			}
		})
	}
}

func TestPlotTopWordsFewerComponents(t *testing.T) {
	var b bytes.Buffer
	if err := PlotTopWords(testmodel(), testfeatures, 2, 2, "two", &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(b.String(), "Topic 3") {
		t.Error("only the first two topics should be drawn")
	}
}

func TestPlotTopWordsRejectsOddComponents(t *testing.T) {
	for _, k := range []int{0, 1, 3, 5} {
		var b bytes.Buffer
		err := PlotTopWords(testmodel(), testfeatures, 3, k, "x", &b)
		if !errors.Is(err, ErrComponents) {
			t.Errorf("k=%d: expected ErrComponents, got %v", k, err)
		}
		if b.Len() != 0 {
			t.Errorf("k=%d: nothing should be written on error", k)
		}
	}
}

func TestDominantTopics(t *testing.T) {
	// 3 topics x 2 documents
	dot := mat.NewDense(3, 2, []float64{
		0.2, 0.1,
		0.7, 0.3,
		0.1, 0.6,
	})
	first, second, w1, w2 := DominantTopics(dot)
	if first[0] != 1 || second[0] != 0 || first[1] != 2 || second[1] != 1 {
		t.Errorf("unexpected ranking: %v %v", first, second)
	}
	if w1[0] != 0.7 || w2[1] != 0.3 {
		t.Errorf("unexpected weights: %v %v", w1, w2)
	}
}

func TestPlotDocumentMap(t *testing.T) {
	dot := mat.NewDense(2, 3, []float64{
		0.9, 0.2, 0.5,
		0.1, 0.8, 0.5,
	})
	var b bytes.Buffer
	if err := PlotDocumentMap(dot, []string{"one", "two", "three"}, "map", &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "Topic 2") {
		t.Error("expected a series per topic")
	}

	if err := PlotDocumentMap(dot, []string{"one"}, "map", &b); !errors.Is(err, ErrFeatures) {
		t.Errorf("expected ErrFeatures for mismatched labels, got %v", err)
	}
}
