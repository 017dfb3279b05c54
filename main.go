//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"github.com/e-gun/TweetTopics/internal/db"
	"github.com/e-gun/TweetTopics/internal/gph"
	"github.com/e-gun/TweetTopics/internal/lnch"
	"github.com/e-gun/TweetTopics/internal/mm"
	"github.com/e-gun/TweetTopics/internal/txt"
	"github.com/e-gun/TweetTopics/internal/vec"
	"github.com/e-gun/TweetTopics/internal/vlt"
	"github.com/e-gun/TweetTopics/internal/web"
	"github.com/pkg/profile"
	"os"
	"os/signal"
)

// these next variables should be injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var VersSuppl string
var BuildDate string
var PGOInfo string

var Msg = mm.NewMessageMaker()

func main() {
	// go tool pprof --pdf ./TweetTopics /var/folders/.../cpu.pprof > profile.pdf

	lnch.GitCommit = GitCommit
	lnch.VersSuppl = VersSuppl
	lnch.BuildDate = BuildDate
	lnch.PGOInfo = PGOInfo

	lnch.ConfigAtLaunch()

	for _, m := range []*mm.MessageMaker{Msg, db.Msg, gph.Msg, txt.Msg, vec.Msg, vlt.Msg, web.Msg} {
		lnch.UpdateMessageMakerWithConfig(m)
	}

	cfg := lnch.Config

	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	lnch.PrintVersion(*cfg)
	lnch.PrintBuildInfo(*cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lm, closer, err := pickLemmatizer(ctx, *cfg)
	Msg.EC(err)
	defer closer()

	stops := txt.FetchStops()

	if cfg.Serve {
		rs, e := db.NewReportStore(cfg.ReportDB)
		Msg.EC(e)
		defer rs.Close()

		hub := vlt.BuildRunInfoHub()
		go hub.RunInfoHubLoop(ctx)

		Msg.EC(web.StartEchoServer(ctx, web.BuildEcho(*cfg, rs, hub, lm, stops)))
		return
	}

	corpus, err := loadCorpus(ctx, *cfg)
	Msg.EC(err)

	Msg.EC(runCLI(ctx, *cfg, corpus, lm, stops))
}
