//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/websocket"
	"time"
)

//
// WEBSOCKET INFRASTRUCTURE: one client per run id; the client polls the hub and pushes what it finds
//

type PollData struct {
	ID      string  `json:"ID"`
	Stage   string  `json:"Stage"`
	Done    int     `json:"Done"`
	Total   int     `json:"Total"`
	Percent float64 `json:"Percent"`
	Elapsed string  `json:"Elapsed"`
	Message string  `json:"Statusmessage"`
	Error   string  `json:"Error,omitempty"`
	Close   string  `json:"close"`
}

type WSClient struct {
	ID    string
	Conn  *websocket.Conn
	Hub   *RunInfoHub
	Pause time.Duration
}

// WSMessageLoop - output the constantly updated run progress to the websocket; then exit
func (c *WSClient) WSMessageLoop() {
	const (
		FAIL1 = `WSClient.WSMessageLoop() never found '%s' in the RunInfoHub`
		FAIL2 = "WSClient.WSMessageLoop() failed on WriteMessage()"
	)

	pause := c.Pause
	if pause == 0 {
		pause = 250 * time.Millisecond
	}

	write := func(pd PollData) bool {
		js, err := json.Marshal(pd)
		if err != nil {
			return false
		}
		if err = c.Conn.WriteMessage(websocket.TextMessage, js); err != nil {
			Msg.WARN(FAIL2)
			return false
		}
		return true
	}

	for {
		ri := c.Hub.Fetch(c.ID)
		if !ri.Exists {
			Msg.FYI(fmt.Sprintf(FAIL1, c.ID))
			write(PollData{ID: c.ID, Message: "unknown run", Close: "closed"})
			return
		}

		pd := formatpoll(ri)
		if ri.Finished {
			pd.Close = "closed"
			write(pd)
			return
		}

		pd.Close = "open"
		if !write(pd) {
			return
		}
		time.Sleep(pause)
	}
}

// formatpoll - the status line the browser shows
func formatpoll(ri RunInfo) PollData {
	// example:
	// "preprocessing: 1,250 of 2,000 (62%) (0.4s)"

	const (
		PCT = "%s: %d of %d (%.0f%%)"
		STG = "%s..."
		FIN = "finished"
		ERR = "failed: %s"
	)

	pd := PollData{
		ID:      ri.ID,
		Stage:   ri.Stage,
		Done:    ri.Done,
		Total:   ri.Total,
		Elapsed: fmt.Sprintf("%.1fs", time.Since(ri.Launched).Seconds()),
		Error:   ri.Err,
	}

	switch {
	case ri.Finished && ri.Err != "":
		pd.Message = fmt.Sprintf(ERR, ri.Err)
	case ri.Finished:
		pd.Percent = 100
		pd.Message = FIN
	case ri.Total > 0:
		pd.Percent = float64(ri.Done) / float64(ri.Total) * 100
		pd.Message = fmt.Sprintf(PCT, ri.Stage, ri.Done, ri.Total, pd.Percent)
	case ri.Stage != "":
		pd.Message = fmt.Sprintf(STG, ri.Stage)
	}
	return pd
}
