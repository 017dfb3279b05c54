//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/e-gun/TweetTopics/internal/mm"
	"github.com/e-gun/TweetTopics/internal/str"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	Msg = mm.NewMessageMaker()

	ErrNoInput   = errors.New("no input files matched")
	ErrCSVColumn = errors.New("csv column out of range")
)

// LoadFiles - every file matching the doublestar glob becomes documents: one per non-blank line of a .txt, one per row of a .csv
func LoadFiles(pattern string, csvcol int) ([]str.Document, error) {
	const (
		MSG1 = "LoadFiles() found %d file(s) matching '%s'"
		MSG2 = "LoadFiles() skipping '%s': unknown extension"
		MSG3 = "LoadFiles() read %d documents from '%s'"
	)

	found, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("LoadFiles() bad pattern '%s': %w", pattern, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrNoInput, pattern)
	}
	Msg.FYI(fmt.Sprintf(MSG1, len(found), pattern))

	var docs []str.Document
	for _, fn := range found {
		var dd []str.Document
		switch strings.ToLower(filepath.Ext(fn)) {
		case ".txt":
			dd, err = readlines(fn)
		case ".csv":
			dd, err = readcsv(fn, csvcol)
		default:
			Msg.WARN(fmt.Sprintf(MSG2, fn))
			continue
		}
		if err != nil {
			return nil, err
		}
		Msg.PEEK(fmt.Sprintf(MSG3, len(dd), fn))
		docs = append(docs, dd...)
	}
	return docs, nil
}

func readlines(fn string) ([]str.Document, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var docs []str.Document
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		docs = append(docs, str.Document{line})
	}
	return docs, sc.Err()
}

// readcsv - the first row is a header
func readcsv(fn string, col int) ([]str.Document, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var docs []str.Document
	header := true
	for {
		rec, e := r.Read()
		if errors.Is(e, io.EOF) {
			break
		}
		if e != nil {
			return nil, fmt.Errorf("readcsv() '%s': %w", fn, e)
		}
		if header {
			header = false
			if col < 0 || col >= len(rec) {
				return nil, fmt.Errorf("%w: %d of %d in '%s'", ErrCSVColumn, col, len(rec), fn)
			}
			continue
		}
		if col >= len(rec) || strings.TrimSpace(rec[col]) == "" {
			continue
		}
		docs = append(docs, str.Document{rec[col]})
	}
	return docs, nil
}
