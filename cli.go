//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/db"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/txt"
	"github.com/e-gun/TweetTopics/internal/vec"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrNoSource = errors.New("no document source: use -in, -sq, or -pg")

// loadCorpus - files win over sqlite; sqlite wins over postgres
func loadCorpus(ctx context.Context, cfg str.CurrentConfiguration) ([]str.Document, error) {
	const (
		MSG1 = "loaded %d documents"
		MSG2 = "keeping the first %d of %d documents"
	)

	var (
		corpus []str.Document
		err    error
	)

	switch {
	case cfg.Input != "":
		corpus, err = db.LoadFiles(cfg.Input, cfg.CSVColumn)
	case cfg.SQLiteDB != "":
		corpus, err = db.SQLiteDocuments(ctx, cfg.SQLiteDB, cfg.SQLiteQuery)
	case cfg.PGLogin.Pass != "":
		pool, e := db.FillDBConnectionPool(ctx, cfg.PGLogin, cfg.WorkerCount)
		if e != nil {
			return nil, e
		}
		defer pool.Close()
		corpus, err = db.PGDocuments(ctx, pool, cfg.PGQuery)
	default:
		return nil, ErrNoSource
	}
	if err != nil {
		return nil, err
	}

	if len(corpus) > vv.MAXDOCSPERRUN {
		Msg.WARN(fmt.Sprintf(MSG2, vv.MAXDOCSPERRUN, len(corpus)))
		corpus = corpus[:vv.MAXDOCSPERRUN]
	}

	Msg.FYI(message.NewPrinter(language.English).Sprintf(MSG1, len(corpus)))
	return corpus, nil
}

// pickLemmatizer - the lemmatizer named in the config plus whatever has to be closed when the program ends
func pickLemmatizer(ctx context.Context, cfg str.CurrentConfiguration) (txt.Lemmatizer, func(), error) {
	const (
		FAIL1 = "the '%s' lemmatizer needs a lemma file: -lf {file}"
		LDB   = "ttp-lemmata.db"
	)

	noop := func() {}

	switch cfg.Lemmatizer {
	case "snowball":
		return txt.SnowballLemmatizer{}, noop, nil
	case "dict":
		if cfg.LemmaFile == "" {
			return nil, noop, fmt.Errorf(FAIL1, cfg.Lemmatizer)
		}
		d, err := txt.LoadDictLemmatizer(cfg.LemmaFile)
		return d, noop, err
	case "sqlite":
		if cfg.LemmaFile == "" {
			return nil, noop, fmt.Errorf(FAIL1, cfg.Lemmatizer)
		}
		dbf := cfg.LemmaFile
		ext := strings.ToLower(filepath.Ext(dbf))
		if ext == ".tsv" || ext == ".txt" {
			// a tab-separated list gets loaded into a db next to it
			dbf = strings.TrimSuffix(cfg.LemmaFile, filepath.Ext(cfg.LemmaFile)) + "-" + LDB
			if _, err := db.LoadLemmata(ctx, dbf, cfg.LemmaFile); err != nil {
				return nil, noop, err
			}
		}
		sl, err := db.NewSQLiteLemmatizer(dbf)
		if err != nil {
			return nil, noop, err
		}
		return sl, func() { _ = sl.Close() }, nil
	default:
		return nil, noop, nil
	}
}

// runCLI - extract the topics; write the chart(s); print the report
func runCLI(ctx context.Context, cfg str.CurrentConfiguration, corpus []str.Document, lm txt.Lemmatizer, stops []string) error {
	const (
		MSG1 = "wrote '%s'"
	)

	p := vec.DefaultTopicParams()
	p.Samples = cfg.Samples
	p.Features = cfg.Features
	p.Components = cfg.Components
	p.TopWords = cfg.TopWords
	p.Preprocess = cfg.Preprocess
	p.Placeholders = cfg.Placeholders
	p.LegacyRT = cfg.LegacyRT
	p.StopWords = stops
	p.Lemmatizer = lm
	p.Model = cfg.Model
	p.Title = cfg.Title
	p.ChartWidth = cfg.ChartWidth
	p.ChartHeight = cfg.ChartHeight
	p.DocMap = cfg.DocMap
	p.LDA.Processes = cfg.WorkerCount
	p.Progress = terminalprogress(cfg)

	rep, err := vec.ExtractTopics(ctx, corpus, p)
	if err != nil {
		return err
	}

	if err = os.WriteFile(cfg.Output, rep.Chart, vv.WRITEPERMS); err != nil {
		return err
	}
	Msg.NOTE(fmt.Sprintf(MSG1, cfg.Output))

	if len(rep.DocMap) > 0 {
		if err = os.WriteFile(cfg.MapOutput, rep.DocMap, vv.WRITEPERMS); err != nil {
			return err
		}
		Msg.NOTE(fmt.Sprintf(MSG1, cfg.MapOutput))
	}

	if cfg.ReportDB != "" {
		if rs, e := db.NewReportStore(cfg.ReportDB); e == nil {
			err = rs.Put(rep)
			_ = rs.Close()
		} else {
			err = e
		}
		if err != nil {
			Msg.WARN(err.Error())
		}
	}

	fmt.Print(Msg.ColStyle(textreport(rep)))
	return nil
}

// terminalprogress - a progress bar for the preprocessing stage when there is a terminal to draw it on
func terminalprogress(cfg str.CurrentConfiguration) str.ProgressFunc {
	if cfg.LogLevel < vv.MSGNOTE || !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}

	var (
		bar *progressbar.ProgressBar
		mtx sync.Mutex
	)

	return func(stage string, done int, total int) {
		mtx.Lock()
		defer mtx.Unlock()

		if stage != vec.STAGEPREP || total == 0 {
			if bar != nil {
				_ = bar.Finish()
				bar = nil
			}
			return
		}

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(!cfg.BlackAndWhite),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Preprocessing[reset]"),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}
}

// textreport - the topics as the terminal sees them
func textreport(rep *str.TopicReport) string {
	// sample:
	// Topic #1: cats kittens purr (docs: 1,024; 51.2%; weight: 100.0)

	const (
		HEAD = "S1%sS0 [C3%sC0] %d documents; vocabulary: %d; n_samples: %d; n_features: %d\n"
		TOP  = "C1Topic #%dC0: %s (docs: %d; %.1f%%; weight: %.1f)\n"
	)

	pr := message.NewPrinter(language.English)

	var sb strings.Builder
	sb.WriteString(pr.Sprintf(HEAD, rep.Title, rep.Model, rep.Documents, rep.Vocabulary, rep.Samples, rep.Features))
	for _, t := range rep.Topics {
		ww := make([]string, len(t.Words))
		for i, w := range t.Words {
			ww[i] = w.Word
		}
		sb.WriteString(pr.Sprintf(TOP, t.Number, strings.Join(ww, " "), t.DocCount, t.DocShare, t.ScaledWeight))
	}
	return sb.String()
}
