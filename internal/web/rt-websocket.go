//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/e-gun/TweetTopics/internal/vlt"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"time"
)

var (
	Upgrader = websocket.Upgrader{}
	WSPause  = 250 * time.Millisecond
)

//
// THE ROUTE
//

// RtWebsocket - progress info for a topic run (multiple clients at a time)
func RtWebsocket(c echo.Context) error {
	const (
		FAILCON = "RtWebsocket(): ws connection failed"
	)

	ws, err := Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		Msg.NOTE(FAILCON)
		return nil
	}
	defer ws.Close()

	progresspoll := &vlt.WSClient{
		ID:    c.Param("id"),
		Conn:  ws,
		Hub:   RunHub,
		Pause: WSPause,
	}

	progresspoll.WSMessageLoop()
	return nil
}
