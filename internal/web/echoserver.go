//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/db"
	"github.com/e-gun/TweetTopics/internal/mm"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/txt"
	"github.com/e-gun/TweetTopics/internal/vlt"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"net/http"
	"strings"
	"time"
)

var (
	Msg = mm.NewMessageMaker()

	// set by BuildEcho()
	Config     str.CurrentConfiguration
	Reports    *db.ReportStore
	RunHub     *vlt.RunInfoHub
	Lemmatizer txt.Lemmatizer
	StopWords  []string
)

// BuildEcho - the echo instance with its middleware and routes
func BuildEcho(cfg str.CurrentConfiguration, rs *db.ReportStore, hub *vlt.RunInfoHub, lm txt.Lemmatizer, stops []string) *echo.Echo {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	Config = cfg
	Reports = rs
	RunHub = hub
	Lemmatizer = lm
	StopWords = stops

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		} else {
			last := ua[len(ua)-1]
			buf.Write([]byte(last))
			return 1, nil
		}
	}

	//
	// SETUP
	//

	e := echo.New()

	switch cfg.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECOND)))

	e.Use(middleware.Recover())

	// the websocket cannot be gzipped
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/ws/")
		},
	}))

	//
	// TTP ROUTES
	//

	//
	// [a] topic runs ("rt-topics.go")
	//

	e.POST("/topics/run", RtTopicsRun)          // body: {"documents": [["tweet one"], ["tweet", "two"]], "components": 6}
	e.GET("/topics/status/:id", RtTopicsStatus) // "u: /topics/status/0a4c2d7e-..."
	e.GET("/topics/cancel/:id", RtTopicsCancel) // "u: /topics/cancel/0a4c2d7e-..."
	e.GET("/topics/list", RtTopicsList)         // "u: /topics/list"
	e.GET("/topics/report/:id", RtTopicsReport) // "u: /topics/report/0a4c2d7e-..."
	e.GET("/topics/chart/:id", RtTopicsChart)   // "u: /topics/chart/0a4c2d7e-..."
	e.GET("/topics/map/:id", RtTopicsMap)       // "u: /topics/map/0a4c2d7e-..."
	e.GET("/topics/delete/:id", RtTopicsDelete) // "u: /topics/delete/0a4c2d7e-..."

	//
	// [b] websocket ("rt-websocket.go")
	//

	e.GET("/ws/:id", RtWebsocket)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	return e
}

// StartEchoServer - serve until ctx is done, then shut down gracefully
func StartEchoServer(ctx context.Context, e *echo.Echo) error {
	const (
		MSG1  = "serving on %s"
		MSG2  = "StartEchoServer() is shutting down"
		GRACE = 10 * time.Second
	)
	addr := fmt.Sprintf("%s:%d", Config.HostIP, Config.HostPort)
	Msg.NOTE(fmt.Sprintf(MSG1, addr))

	failed := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return err
	case <-ctx.Done():
	}

	Msg.NOTE(MSG2)
	sctx, cancel := context.WithTimeout(context.Background(), GRACE)
	defer cancel()
	return e.Shutdown(sctx)
}
