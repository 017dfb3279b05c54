//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/jackc/pgx/v5/pgxpool"
	"strings"
)

// PGPoolURL - the pgxpool connection string for a login
func PGPoolURL(pl str.PostgresLogin, workers int) string {
	const (
		UTPL = "postgres://%s:%s@%s:%d/%s?pool_min_conns=%d&pool_max_conns=%d"
	)
	mn := 1
	mx := workers
	if mx < mn {
		mx = mn
	}
	return fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName, mn, mx)
}

// FillDBConnectionPool - build the pgxpool for reading documents out of PostgreSQL
func FillDBConnectionPool(ctx context.Context, pl str.PostgresLogin, workers int) (*pgxpool.Pool, error) {
	const (
		FAIL1   = "Configuration error. Could not execute ParseConfig(url) for %s@%s:%d"
		FAIL2   = "Could not connect to PostgreSQL"
		ERRRUN  = `dial error`
		FAILRUN = `'%s': the PostgreSQL server cannot be found; check that it is running and serving on port %d`
		ERRSRV  = `server error`
		FAILSRV = `'%s': there is configuration problem; see the following response from PostgreSQL:`
	)

	config, e := pgxpool.ParseConfig(PGPoolURL(pl, workers))
	if e != nil {
		// do not echo the url: it holds the password
		Msg.MAND(fmt.Sprintf(FAIL1, pl.User, pl.Host, pl.Port))
		return nil, e
	}

	thepool, e := pgxpool.NewWithConfig(ctx, config)
	if e == nil {
		e = thepool.Ping(ctx)
	}
	if e != nil {
		Msg.MAND(FAIL2)
		if strings.Contains(e.Error(), ERRRUN) {
			Msg.MAND(fmt.Sprintf(FAILRUN, ERRRUN, pl.Port))
		}
		if strings.Contains(e.Error(), ERRSRV) {
			Msg.MAND(fmt.Sprintf(FAILSRV, ERRSRV))
			parts := strings.Split(e.Error(), ERRSRV)
			Msg.CRIT(parts[1])
		}
		if thepool != nil {
			thepool.Close()
		}
		return nil, e
	}
	return thepool, nil
}

// PGDocuments - each row of the query's first column is a document
func PGDocuments(ctx context.Context, pool *pgxpool.Pool, query string) ([]str.Document, error) {
	const (
		MSG1 = "PGDocuments() read %d documents"
	)

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PGDocuments() query failed: %w", err)
	}
	defer rows.Close()

	var docs []str.Document
	for rows.Next() {
		var t *string
		if err = rows.Scan(&t); err != nil {
			return nil, err
		}
		if t == nil || strings.TrimSpace(*t) == "" {
			continue
		}
		docs = append(docs, str.Document{*t})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	Msg.FYI(fmt.Sprintf(MSG1, len(docs)))
	return docs, nil
}
