//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"context"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/mm"
	"runtime"
	"time"
)

var Msg = mm.NewMessageMaker()

//
// CHANNEL-BASED RUNINFO REPORTING TO COMMUNICATE PROGRESS BETWEEN ROUTINES: topic runs write; websockets read
//

// RunInfo - what is known about a topic run in progress
type RunInfo struct {
	ID        string             `json:"id"`
	Exists    bool               `json:"-"`
	Stage     string             `json:"stage"`
	Done      int                `json:"done"`
	Total     int                `json:"total"`
	Launched  time.Time          `json:"launched"`
	Finished  bool               `json:"finished"`
	Err       string             `json:"error,omitempty"`
	RealIP    string             `json:"-"`
	CancelFnc context.CancelFunc `json:"-"`
}

// RIProgress - RunInfoHub helper struct for moving a run along
type RIProgress struct {
	Key   string
	Stage string
	Done  int
	Total int
}

// RIOutcome - RunInfoHub helper struct for closing out a run
type RIOutcome struct {
	Key string
	Err error
}

// RIReply - RunInfoHub helper struct for returning the RunInfo stored at map[Key]
type RIReply struct {
	Key      string
	Response chan RunInfo
}

// RICount - RunInfoHub helper struct for counting the unfinished runs of one address
type RICount struct {
	Key      string
	Response chan int
}

type RunInfoHub struct {
	InsertInfo  chan RunInfo
	Progress    chan RIProgress
	Finish      chan RIOutcome
	RequestInfo chan RIReply
	IPRunCount  chan RICount
	Cancel      chan string
	Del         chan string
	Linger      time.Duration
	done        chan struct{}
}

// BuildRunInfoHub - build the hub; RunInfoHubLoop() has to be running before any of the helpers are called
func BuildRunInfoHub() *RunInfoHub {
	return &RunInfoHub{
		InsertInfo:  make(chan RunInfo),
		Progress:    make(chan RIProgress, 2*runtime.NumCPU()),
		Finish:      make(chan RIOutcome),
		RequestInfo: make(chan RIReply),
		IPRunCount:  make(chan RICount),
		Cancel:      make(chan string),
		Del:         make(chan string),
		Linger:      10 * time.Minute,
		done:        make(chan struct{}),
	}
}

// RunInfoHubLoop - the loop that owns every RunInfo; it exits when ctx is done and must only be started once
func (h *RunInfoHub) RunInfoHubLoop(ctx context.Context) {
	const (
		CANC  = "RunInfoHubLoop() reports that '%s' was cancelled"
		FIN   = "RunInfoHubLoop() reports that '%s' finished: %s"
		SWEEP = time.Minute
	)

	var (
		allinfo = make(map[string]RunInfo)
		doneat  = make(map[string]time.Time)
	)

	reporter := func(r RIReply) {
		if ri, ok := allinfo[r.Key]; ok {
			r.Response <- ri
		} else {
			// "false" ends the websocket loop
			r.Response <- RunInfo{ID: r.Key, Exists: false}
		}
	}

	ipcount := func(ip string) int {
		count := 0
		for _, v := range allinfo {
			if v.RealIP == ip && !v.Finished {
				count++
			}
		}
		return count
	}

	// finished runs stay visible for a while so that late pollers can see the outcome
	sweep := func() {
		for id, t := range doneat {
			if time.Since(t) > h.Linger {
				delete(allinfo, id)
				delete(doneat, id)
			}
		}
	}

	ticker := time.NewTicker(SWEEP)
	defer ticker.Stop()
	defer close(h.done)

	// the main loop
	for {
		select {
		case <-ctx.Done():
			for _, v := range allinfo {
				if v.CancelFnc != nil && !v.Finished {
					v.CancelFnc()
				}
			}
			return
		case rq := <-h.RequestInfo:
			reporter(rq)
		case ri := <-h.InsertInfo:
			ri.Exists = true
			if ri.Launched.IsZero() {
				ri.Launched = time.Now()
			}
			allinfo[ri.ID] = ri
		case pr := <-h.Progress:
			if x, ok := allinfo[pr.Key]; ok && !x.Finished {
				x.Stage = pr.Stage
				x.Done = pr.Done
				x.Total = pr.Total
				allinfo[pr.Key] = x
			}
		case fin := <-h.Finish:
			if x, ok := allinfo[fin.Key]; ok {
				x.Finished = true
				res := "ok"
				if fin.Err != nil {
					x.Err = fin.Err.Error()
					res = x.Err
				}
				allinfo[fin.Key] = x
				doneat[fin.Key] = time.Now()
				Msg.PEEK(fmt.Sprintf(FIN, fin.Key, res))
			}
		case ipc := <-h.IPRunCount:
			ipc.Response <- ipcount(ipc.Key)
		case id := <-h.Cancel:
			if x, ok := allinfo[id]; ok && x.CancelFnc != nil && !x.Finished {
				x.CancelFnc()
				Msg.PEEK(fmt.Sprintf(CANC, id))
			}
		case del := <-h.Del:
			delete(allinfo, del)
			delete(doneat, del)
		case <-ticker.C:
			sweep()
		}
	}
}

// the helpers below give up once the loop has exited: nothing is left to answer them

// Stopped - true once RunInfoHubLoop() has exited
func (h *RunInfoHub) Stopped() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

func (h *RunInfoHub) Insert(ri RunInfo) {
	select {
	case h.InsertInfo <- ri:
	case <-h.done:
	}
}

func (h *RunInfoHub) Report(id string, stage string, done int, total int) {
	select {
	case h.Progress <- RIProgress{Key: id, Stage: stage, Done: done, Total: total}:
	case <-h.done:
	}
}

func (h *RunInfoHub) Close(id string, err error) {
	select {
	case h.Finish <- RIOutcome{Key: id, Err: err}:
	case <-h.done:
	}
}

// CancelRun - cancel a run that has not finished
func (h *RunInfoHub) CancelRun(id string) {
	select {
	case h.Cancel <- id:
	case <-h.done:
	}
}

// Forget - drop a run from the hub
func (h *RunInfoHub) Forget(id string) {
	select {
	case h.Del <- id:
	case <-h.done:
	}
}

// Fetch - the RunInfo for id; a stopped hub knows of no runs
func (h *RunInfoHub) Fetch(id string) RunInfo {
	responder := RIReply{Key: id, Response: make(chan RunInfo)}
	select {
	case h.RequestInfo <- responder:
		return <-responder.Response
	case <-h.done:
		return RunInfo{ID: id, Exists: false}
	}
}

// CountIP - the unfinished runs launched from ip; 0 from a stopped hub
func (h *RunInfoHub) CountIP(ip string) int {
	responder := RICount{Key: ip, Response: make(chan int)}
	select {
	case h.IPRunCount <- responder:
		return <-responder.Response
	case <-h.done:
		return 0
	}
}
