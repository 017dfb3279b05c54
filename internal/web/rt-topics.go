//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"context"
	"errors"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/db"
	"github.com/e-gun/TweetTopics/internal/gen"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vec"
	"github.com/e-gun/TweetTopics/internal/vlt"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"net/http"
	"time"
)

var (
	ErrNoDocuments  = errors.New("no documents supplied")
	ErrTooManyDocs  = errors.New("too many documents for one run")
	ErrTooManyRuns  = errors.New("too many unfinished runs from this address")
	ErrStillRunning = errors.New("run has not finished")
	ErrShuttingDown = errors.New("server is shutting down")
)

const (
	MAXRUNSPERIP = 2
)

// RunRequest - the JSON body of POST /topics/run; zero values fall back to the server config
type RunRequest struct {
	Documents    []str.Document `json:"documents"`
	Components   int            `json:"components"`
	TopWords     int            `json:"topwords"`
	Model        string         `json:"model"`
	Title        string         `json:"title"`
	Placeholders bool           `json:"placeholders"`
	LegacyRT     bool           `json:"legacyrt"`
	NoPreprocess bool           `json:"nopreprocess"`
	DocMap       bool           `json:"docmap"`
}

type RunAccepted struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	WS     string `json:"ws"`
}

// RtTopicsRun - start a topic run in the background and hand back its id
func RtTopicsRun(c echo.Context) error {
	const (
		MSG1 = "RtTopicsRun() launched '%s' over %d documents"
	)

	var rr RunRequest
	if err := c.Bind(&rr); err != nil {
		return gen.JSONerror(c, http.StatusBadRequest, err)
	}

	if len(rr.Documents) == 0 {
		return gen.JSONerror(c, http.StatusBadRequest, ErrNoDocuments)
	}

	if len(rr.Documents) > vv.MAXDOCSPERRUN {
		return gen.JSONerror(c, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %d > %d", ErrTooManyDocs, len(rr.Documents), vv.MAXDOCSPERRUN))
	}

	p := paramsfromrequest(rr)
	if err := vec.ValidateParams(p); err != nil {
		return gen.JSONerror(c, http.StatusBadRequest, err)
	}

	if RunHub.Stopped() {
		return gen.JSONerror(c, http.StatusServiceUnavailable, ErrShuttingDown)
	}

	ip := c.RealIP()
	if RunHub.CountIP(ip) >= MAXRUNSPERIP {
		return gen.JSONerror(c, http.StatusTooManyRequests, ErrTooManyRuns)
	}

	id := uuid.New().String()
	p.RunID = id

	ctx, cancel := context.WithCancel(context.Background())
	RunHub.Insert(vlt.RunInfo{ID: id, Launched: time.Now(), RealIP: ip, CancelFnc: cancel})

	p.Progress = func(stage string, done int, total int) {
		RunHub.Report(id, stage, done, total)
	}

	go func() {
		defer cancel()
		rep, err := vec.ExtractTopics(ctx, rr.Documents, p)
		if err == nil {
			err = Reports.Put(rep)
		}
		RunHub.Close(id, err)
		Msg.LogPaths("RtTopicsRun()")
	}()

	Msg.FYI(fmt.Sprintf(MSG1, id, len(rr.Documents)))
	return c.JSON(http.StatusAccepted, RunAccepted{ID: id, Status: "/topics/status/" + id, WS: "/ws/" + id})
}

// RtTopicsStatus - where a run is now
func RtTopicsStatus(c echo.Context) error {
	ri := RunHub.Fetch(c.Param("id"))
	if !ri.Exists {
		// the hub forgets finished runs after a while; the store does not
		if _, err := Reports.Get(c.Param("id")); err == nil {
			return gen.JSONresponse(c, vlt.RunInfo{ID: c.Param("id"), Stage: vec.STAGEDONE, Finished: true})
		}
		return gen.JSONerror(c, http.StatusNotFound, fmt.Errorf("%w: %s", db.ErrNoReport, c.Param("id")))
	}
	return gen.JSONresponse(c, ri)
}

func RtTopicsCancel(c echo.Context) error {
	ri := RunHub.Fetch(c.Param("id"))
	if !ri.Exists {
		return gen.JSONerror(c, http.StatusNotFound, fmt.Errorf("%w: %s", db.ErrNoReport, c.Param("id")))
	}
	RunHub.CancelRun(ri.ID)
	return gen.JSONresponse(c, map[string]string{"id": ri.ID, "cancelled": fmt.Sprintf("%t", !ri.Finished)})
}

func RtTopicsList(c echo.Context) error {
	rr, err := Reports.List()
	if err != nil {
		return gen.JSONerror(c, http.StatusInternalServerError, err)
	}
	if rr == nil {
		rr = []str.TopicReport{}
	}
	return gen.JSONresponse(c, rr)
}

func RtTopicsReport(c echo.Context) error {
	rep, err := Reports.Get(c.Param("id"))
	if err != nil {
		return storeerror(c, err)
	}
	return gen.JSONresponse(c, rep)
}

func RtTopicsChart(c echo.Context) error {
	htm, err := Reports.Chart(c.Param("id"))
	if err != nil {
		return storeerror(c, err)
	}
	return c.HTMLBlob(http.StatusOK, htm)
}

func RtTopicsMap(c echo.Context) error {
	htm, err := Reports.DocMap(c.Param("id"))
	if err != nil {
		return storeerror(c, err)
	}
	return c.HTMLBlob(http.StatusOK, htm)
}

func RtTopicsDelete(c echo.Context) error {
	id := c.Param("id")
	if ri := RunHub.Fetch(id); ri.Exists && !ri.Finished {
		return gen.JSONerror(c, http.StatusConflict, ErrStillRunning)
	}
	if err := Reports.Delete(id); err != nil {
		return gen.JSONerror(c, http.StatusInternalServerError, err)
	}
	RunHub.Forget(id)
	return gen.JSONresponse(c, map[string]string{"id": id, "deleted": "true"})
}

// paramsfromrequest - the request on top of the server config
func paramsfromrequest(rr RunRequest) str.TopicParams {
	p := vec.DefaultTopicParams()
	p.Samples = Config.Samples
	p.Features = Config.Features
	p.Components = Config.Components
	p.TopWords = Config.TopWords
	p.Model = Config.Model
	p.Title = Config.Title
	p.ChartWidth = Config.ChartWidth
	p.ChartHeight = Config.ChartHeight
	p.Placeholders = Config.Placeholders || rr.Placeholders
	p.LegacyRT = Config.LegacyRT || rr.LegacyRT
	p.Preprocess = Config.Preprocess && !rr.NoPreprocess
	p.DocMap = Config.DocMap || rr.DocMap
	p.Lemmatizer = Lemmatizer
	if StopWords != nil {
		p.StopWords = StopWords
	}

	if rr.Components != 0 {
		p.Components = rr.Components
	}
	if rr.TopWords != 0 {
		p.TopWords = rr.TopWords
	}
	if rr.Model != "" {
		p.Model = rr.Model
	}
	if rr.Title != "" {
		p.Title = rr.Title
	}
	return p
}

func storeerror(c echo.Context, err error) error {
	if errors.Is(err, db.ErrNoReport) {
		return gen.JSONerror(c, http.StatusNotFound, err)
	}
	return gen.JSONerror(c, http.StatusInternalServerError, err)
}
