//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"context"
	"encoding/json"
	"github.com/e-gun/TweetTopics/internal/db"
	"github.com/e-gun/TweetTopics/internal/lnch"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vec"
	"github.com/e-gun/TweetTopics/internal/vlt"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func init() {
	Msg.LLvl = vv.MSGMAND
	vec.Msg.LLvl = vv.MSGMAND
	vlt.Msg.LLvl = vv.MSGMAND
	db.Msg.LLvl = vv.MSGMAND
}

func testecho(t *testing.T) *echo.Echo {
	t.Helper()
	rs, err := db.NewReportStore(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { rs.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := vlt.BuildRunInfoHub()
	go hub.RunInfoHubLoop(ctx)

	cfg := *lnch.BuildDefaultConfig()
	cfg.Components = 2
	cfg.TopWords = 4
	return BuildEcho(cfg, rs, hub, nil, nil)
}

func do(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func runbody(t *testing.T, extra map[string]any) string {
	t.Helper()
	var docs []str.Document
	for i := 0; i < 10; i++ {
		docs = append(docs, str.Document{"cats purr softly while kittens nap near sleepy cats"})
		docs = append(docs, str.Document{"heavy rain floods streets while storms batter coastal towns"})
	}
	m := map[string]any{"documents": docs}
	for k, v := range extra {
		m[k] = v
	}
	js, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return string(js)
}

func waitfor(t *testing.T, id string) vlt.RunInfo {
	t.Helper()
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		ri := RunHub.Fetch(id)
		if ri.Finished {
			return ri
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("run %s never finished", id)
	return vlt.RunInfo{}
}

func TestRtTopicsRunRejectsBadRequests(t *testing.T) {
	e := testecho(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"not json", "{", http.StatusBadRequest},
		{"no documents", `{"documents": []}`, http.StatusBadRequest},
		{"odd components", runbody(t, map[string]any{"components": 3}), http.StatusBadRequest},
		{"unknown model", runbody(t, map[string]any{"model": "nmf"}), http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/topics/run", tc.body)
			if rec.Code != tc.status {
				t.Errorf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("expected an error body: %s", rec.Body.String())
			}
		})
	}
}

func TestRtTopicsRunAndFetch(t *testing.T) {
	e := testecho(t)

	rec := do(e, http.MethodPost, "/topics/run", runbody(t, map[string]any{"docmap": true}))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	var ra RunAccepted
	if err := json.Unmarshal(rec.Body.Bytes(), &ra); err != nil {
		t.Fatal(err)
	}

	ri := waitfor(t, ra.ID)
	if ri.Err != "" {
		t.Fatalf("run failed: %s", ri.Err)
	}

	rec = do(e, http.MethodGet, "/topics/report/"+ra.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("report: %d %s", rec.Code, rec.Body.String())
	}
	var rep str.TopicReport
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.ID != ra.ID || len(rep.Topics) != 2 || len(rep.Topics[0].Words) != 4 {
		t.Errorf("unexpected report: %+v", rep)
	}

	rec = do(e, http.MethodGet, "/topics/chart/"+ra.ID, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<html") {
		t.Errorf("chart: %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Errorf("chart content type: %q", ct)
	}

	rec = do(e, http.MethodGet, "/topics/map/"+ra.ID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("map: %d", rec.Code)
	}

	rec = do(e, http.MethodGet, "/topics/status/"+ra.ID, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"finished":true`) {
		t.Errorf("status: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/topics/list", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ra.ID) {
		t.Errorf("list: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/topics/delete/"+ra.ID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("delete: %d %s", rec.Code, rec.Body.String())
	}
	if rec = do(e, http.MethodGet, "/topics/report/"+ra.ID, ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestMissingRuns(t *testing.T) {
	e := testecho(t)
	for _, target := range []string{"/topics/report/x", "/topics/chart/x", "/topics/map/x", "/topics/status/x", "/topics/cancel/x"} {
		if rec := do(e, http.MethodGet, target, ""); rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, rec.Code)
		}
	}
}

func TestParamsFromRequest(t *testing.T) {
	Config = *lnch.BuildDefaultConfig()
	p := paramsfromrequest(RunRequest{Components: 6, Model: "gsdmm", NoPreprocess: true, Placeholders: true})
	if p.Components != 6 || p.Model != "gsdmm" || p.Preprocess || !p.Placeholders {
		t.Errorf("request not applied: %+v", p)
	}
	if p.TopWords != vv.DEFAULTTOPWORDS || p.Title != vv.DEFAULTTITLE {
		t.Errorf("config defaults not applied: %+v", p)
	}
}

func TestRtWebsocket(t *testing.T) {
	e := testecho(t)
	WSPause = 10 * time.Millisecond

	srv := httptest.NewServer(e)
	defer srv.Close()

	RunHub.Insert(vlt.RunInfo{ID: "done", Stage: vec.STAGEFIT})
	RunHub.Close("done", nil)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/done"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	_ = ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, m, err := ws.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var pd vlt.PollData
	if err = json.Unmarshal(m, &pd); err != nil {
		t.Fatal(err)
	}
	if pd.ID != "done" || pd.Close != "closed" || pd.Message != "finished" {
		t.Errorf("unexpected poll: %+v", pd)
	}
}

func TestStartEchoServerShutsDownWithContext(t *testing.T) {
	rs, err := db.NewReportStore(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { rs.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := vlt.BuildRunInfoHub()
	go hub.RunInfoHubLoop(ctx)

	cfg := *lnch.BuildDefaultConfig()
	cfg.HostIP = "127.0.0.1"
	cfg.HostPort = 0
	e := BuildEcho(cfg, rs, hub, nil, nil)

	served := make(chan error, 1)
	go func() { served <- StartEchoServer(ctx, e) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-served:
		if err != nil {
			t.Errorf("StartEchoServer() = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("StartEchoServer() did not return after its context was cancelled")
	}

	for !hub.Stopped() {
		time.Sleep(5 * time.Millisecond)
	}

	body := runbody(t, nil)
	answered := make(chan int, 1)
	go func() { answered <- do(e, http.MethodPost, "/topics/run", body).Code }()
	select {
	case code := <-answered:
		if code != http.StatusServiceUnavailable {
			t.Errorf("expected 503 once the hub has stopped, got %d", code)
		}
	case <-time.After(time.Second):
		t.Fatal("POST /topics/run blocked on a stopped hub")
	}

	if rec := do(e, http.MethodGet, "/topics/status/gone", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 from a stopped hub, got %d", rec.Code)
	}
}
