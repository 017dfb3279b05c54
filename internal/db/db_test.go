//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"errors"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vv"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func init() {
	Msg.LLvl = vv.MSGMAND
}

func writefile(t *testing.T, fn string, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	writefile(t, filepath.Join(dir, "a.txt"), "first tweet\n\n  \nsecond tweet\n")
	writefile(t, filepath.Join(dir, "sub", "b.csv"), "id,text\n1,\"hello, world\"\n2,\n3,bye\n")
	writefile(t, filepath.Join(dir, "sub", "c.md"), "ignored")

	tests := []struct {
		name    string
		pattern string
		col     int
		want    []str.Document
		err     error
	}{
		{"txt", filepath.Join(dir, "*.txt"), 0, []str.Document{{"first tweet"}, {"second tweet"}}, nil},
		{"csv", filepath.Join(dir, "**", "*.csv"), 1, []str.Document{{"hello, world"}, {"bye"}}, nil},
		{"bad column", filepath.Join(dir, "**", "*.csv"), 5, nil, ErrCSVColumn},
		{"nothing", filepath.Join(dir, "*.json"), 0, nil, ErrNoInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LoadFiles(tc.pattern, tc.col)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("LoadFiles() = %q, want %q", got, tc.want)
			}
		})
	}

	all, err := LoadFiles(filepath.Join(dir, "**", "*"), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 documents from the .txt and .csv files, got %d", len(all))
	}
}

func TestSQLiteDocuments(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tweets.db")
	sdb, err := OpenSQLite(fn)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []string{
		`CREATE TABLE tweets (tweet_text TEXT)`,
		`INSERT INTO tweets VALUES ('one'), (NULL), (''), ('two')`,
	} {
		if _, err = sdb.Exec(q); err != nil {
			t.Fatal(err)
		}
	}
	sdb.Close()

	got, err := SQLiteDocuments(context.Background(), fn, vv.DEFAULTSQLITEQUERY)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []str.Document{{"one"}, {"two"}}) {
		t.Errorf("SQLiteDocuments() = %q", got)
	}

	if _, err = SQLiteDocuments(context.Background(), fn, "SELECT nope FROM nowhere"); err == nil {
		t.Errorf("expected a query error")
	}
}

func TestSQLiteLemmatizer(t *testing.T) {
	dir := t.TempDir()
	tsv := filepath.Join(dir, "lemmata.tsv")
	writefile(t, tsv, "Ran\trun\nmice\tmouse\nbroken line\n")
	fn := filepath.Join(dir, "lemmata.db")

	n, err := LoadLemmata(context.Background(), fn, tsv)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("LoadLemmata() stored %d rows, want 2", n)
	}

	lm, err := NewSQLiteLemmatizer(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer lm.Close()

	tests := map[string]string{"ran": "run", "MICE": "mouse", "cats": "cats"}
	for in, want := range tests {
		if got := lm.Lemmatize(in); got != want {
			t.Errorf("Lemmatize(%q) = %q, want %q", in, got, want)
		}
		// a second pass comes from the cache
		if got := lm.Lemmatize(in); got != want {
			t.Errorf("cached Lemmatize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInsertLemmataInBatches(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "lemmata.db")
	sdb, err := OpenSQLite(fn)
	if err != nil {
		t.Fatal(err)
	}
	defer sdb.Close()
	if _, err = sdb.Exec(LEMMATABLE); err != nil {
		t.Fatal(err)
	}

	pairs := [][2]string{{"ran", "run"}, {"mice", "mouse"}, {"geese", "goose"}, {"ran", "run"}, {"went", "go"}}
	if err = insertlemmata(context.Background(), sdb, pairs, 2); err != nil {
		t.Fatal(err)
	}

	var n int
	if err = sdb.QueryRow(`SELECT count(*) FROM lemmata`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("expected 4 distinct forms across three batches, got %d", n)
	}

	if err = insertlemmata(context.Background(), sdb, nil, 2); err != nil {
		t.Errorf("an empty list should be a no-op: %v", err)
	}
}

func TestPGPoolURL(t *testing.T) {
	pl := str.PostgresLogin{Host: "127.0.0.1", Port: 5432, User: "u", Pass: "p", DBName: "tweetsDB"}
	got := PGPoolURL(pl, 0)
	if got != "postgres://u:p@127.0.0.1:5432/tweetsDB?pool_min_conns=1&pool_max_conns=1" {
		t.Errorf("PGPoolURL() = %q", got)
	}
	if !strings.HasSuffix(PGPoolURL(pl, 4), "pool_max_conns=4") {
		t.Errorf("PGPoolURL() ignored the worker count")
	}
}

func TestReportStore(t *testing.T) {
	rs, err := NewReportStore(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Close()

	older := &str.TopicReport{ID: "a", Title: "first", Created: time.Now().Add(-time.Hour), Chart: []byte("<html>a</html>")}
	newer := &str.TopicReport{ID: "b", Title: "second", Created: time.Now(), Chart: []byte("<html>b</html>"), DocMap: []byte("<html>map</html>"),
		Topics: []str.Topic{{Number: 1, Words: []str.WeightedWord{{Word: "cat", Weight: 2}}}}}

	for _, r := range []*str.TopicReport{older, newer} {
		if err = rs.Put(r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := rs.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "second" || string(got.Chart) != "<html>b</html>" || string(got.DocMap) != "<html>map</html>" {
		t.Errorf("Get() = %+v", got)
	}
	if got.Topics[0].Words[0].Word != "cat" {
		t.Errorf("Get() lost the topics: %+v", got.Topics)
	}

	if _, err = rs.DocMap("a"); !errors.Is(err, ErrNoReport) {
		t.Errorf("expected ErrNoReport for a missing map, got %v", err)
	}

	list, err := rs.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != "b" {
		t.Errorf("List() should be newest first: %+v", list)
	}

	if err = rs.Delete("b"); err != nil {
		t.Fatal(err)
	}
	if _, err = rs.Get("b"); !errors.Is(err, ErrNoReport) {
		t.Errorf("expected ErrNoReport after Delete(), got %v", err)
	}
	if _, err = rs.Chart("b"); !errors.Is(err, ErrNoReport) {
		t.Errorf("Delete() left the chart behind")
	}
}
