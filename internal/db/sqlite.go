//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/gen"
	"github.com/e-gun/TweetTopics/internal/str"
	_ "modernc.org/sqlite"
	"os"
	"strings"
	"sync"
)

//
// SQLITE: a document source and a lemma table
//

const (
	SQLITEDRIVER = "sqlite"
	LEMMATABLE   = `CREATE TABLE IF NOT EXISTS lemmata (form TEXT PRIMARY KEY, headword TEXT NOT NULL)`
	LEMMAINSERT  = `INSERT OR REPLACE INTO lemmata (form, headword) VALUES (?, ?)`
	LEMMAQUERY   = `SELECT headword FROM lemmata WHERE form = ?`
)

// OpenSQLite - open (or create) a SQLite file
func OpenSQLite(fn string) (*sql.DB, error) {
	sdb, err := sql.Open(SQLITEDRIVER, fn)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite() '%s': %w", fn, err)
	}
	// the pure-go driver and concurrent writers do not mix
	sdb.SetMaxOpenConns(1)
	return sdb, nil
}

// SQLiteDocuments - each row of the query's first column is a document
func SQLiteDocuments(ctx context.Context, fn string, query string) ([]str.Document, error) {
	const (
		MSG1 = "SQLiteDocuments() read %d documents from '%s'"
	)

	sdb, err := OpenSQLite(fn)
	if err != nil {
		return nil, err
	}
	defer sdb.Close()

	rows, err := sdb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("SQLiteDocuments() query failed: %w", err)
	}
	defer rows.Close()

	var docs []str.Document
	for rows.Next() {
		var t sql.NullString
		if err = rows.Scan(&t); err != nil {
			return nil, err
		}
		if !t.Valid || strings.TrimSpace(t.String) == "" {
			continue
		}
		docs = append(docs, str.Document{t.String})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	Msg.FYI(fmt.Sprintf(MSG1, len(docs), fn))
	return docs, nil
}

// LoadLemmata - fill the lemmata table from a tab-separated "form<TAB>headword" file; returns the number of rows read
func LoadLemmata(ctx context.Context, dbfile string, tsv string) (int, error) {
	const (
		MSG1      = "LoadLemmata() stored %d forms in '%s'"
		LEMMABULK = 5000
	)

	f, err := os.Open(tsv)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var pairs [][2]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.Split(sc.Text(), "\t")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		pairs = append(pairs, [2]string{strings.ToLower(parts[0]), parts[1]})
	}
	if err = sc.Err(); err != nil {
		return 0, err
	}

	sdb, err := OpenSQLite(dbfile)
	if err != nil {
		return 0, err
	}
	defer sdb.Close()

	if _, err = sdb.ExecContext(ctx, LEMMATABLE); err != nil {
		return 0, err
	}

	if err = insertlemmata(ctx, sdb, pairs, LEMMABULK); err != nil {
		return 0, err
	}
	Msg.PEEK(fmt.Sprintf(MSG1, len(pairs), dbfile))
	return len(pairs), nil
}

// insertlemmata - one transaction per batch of rows so that a huge list does not sit in a single journal
func insertlemmata(ctx context.Context, sdb *sql.DB, pairs [][2]string, batch int) error {
	if len(pairs) == 0 {
		return nil
	}

	for _, chunk := range gen.ChunkSlice(pairs, batch) {
		tx, err := sdb.BeginTx(ctx, nil)
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, LEMMAINSERT)
		if err != nil {
			_ = tx.Rollback()
			return err
		}

		for _, p := range chunk {
			if _, err = stmt.ExecContext(ctx, p[0], p[1]); err != nil {
				_ = stmt.Close()
				_ = tx.Rollback()
				return err
			}
		}
		_ = stmt.Close()

		if err = tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// SQLiteLemmatizer - look forms up in the lemmata table; misses come back unchanged
type SQLiteLemmatizer struct {
	sdb   *sql.DB
	cache map[string]string
	mtx   sync.RWMutex
}

func NewSQLiteLemmatizer(dbfile string) (*SQLiteLemmatizer, error) {
	sdb, err := OpenSQLite(dbfile)
	if err != nil {
		return nil, err
	}
	if _, err = sdb.Exec(LEMMATABLE); err != nil {
		sdb.Close()
		return nil, err
	}
	return &SQLiteLemmatizer{sdb: sdb, cache: make(map[string]string)}, nil
}

func (s *SQLiteLemmatizer) Lemmatize(token string) string {
	lc := strings.ToLower(token)

	s.mtx.RLock()
	hw, ok := s.cache[lc]
	s.mtx.RUnlock()
	if ok {
		return hw
	}

	var found string
	err := s.sdb.QueryRow(LEMMAQUERY, lc).Scan(&found)
	if err != nil {
		// sql.ErrNoRows or worse: either way the token is its own lemma
		found = token
	}

	s.mtx.Lock()
	s.cache[lc] = found
	s.mtx.Unlock()
	return found
}

func (s *SQLiteLemmatizer) Close() error {
	return s.sdb.Close()
}
