//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/TweetTopics/internal/mm"
	"github.com/e-gun/TweetTopics/internal/vv"
	"runtime"
	"time"
)

func NewMessageMakerConfigured() *mm.MessageMaker {
	m := mm.NewMessageMaker()
	m.Lnc = time.Now()
	m.Win = runtime.GOOS == "windows"
	m.LNm = vv.MYNAME
	m.SNm = vv.SHORTNAME
	m.Ver = vv.VERSION
	UpdateMessageMakerWithConfig(m)
	return m
}

// UpdateMessageMakerWithConfig - each package built its Msg before the config was known
func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}
