//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vv"
	"runtime"
)

//
// VERSION INFO BUILD TIME INJECTION
//

// these next variables should be injected at build time: 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc
// values are loaded into this file at runtime by main.go

var GitCommit string
var VersSuppl string
var BuildDate string
var PGOInfo string

func PrintVersion(cc str.CurrentConfiguration) {
	fmt.Println(Msg.ColStyle(versionline(cc)))
}

// versionline - the launch banner with the run settings that change what a topic chart means
func versionline(cc str.CurrentConfiguration) string {
	// example:
	// [TTP] Tweet Topics (v0.3.1) [git: 64974732] [no pgo] [gl=3; el=0] [lda; k=10; n=10]
	const (
		SN = "[C1%sC0] "
		GC = " [C4git: C4%sC0]"
		LL = " [C6gl=%d; el=%dC0]"
		ME = "C5%sC0 (C2v%sC0)"
		PG = " [C3%sC0]"
		MD = " [C2%s; k=%d; n=%dC0]"
	)
	sn := fmt.Sprintf(SN, vv.SHORTNAME)
	gc := ""
	if GitCommit != "" {
		gc = fmt.Sprintf(GC, GitCommit)
	}

	pg := fmt.Sprintf(PG, "no pgo")
	if PGOInfo != "" {
		pg = fmt.Sprintf(PG, PGOInfo)
	}

	ll := fmt.Sprintf(LL, cc.LogLevel, cc.EchoLog)
	versioninfo := fmt.Sprintf(ME, vv.MYNAME, vv.VERSION+VersSuppl)
	md := fmt.Sprintf(MD, cc.Model, cc.Components, cc.TopWords)
	return sn + versioninfo + gc + pg + ll + md
}

func PrintBuildInfo(cc str.CurrentConfiguration) {
	fmt.Println(Msg.ColStyle(buildinfo(cc)))
}

// buildinfo - the build and the text pipeline the run will use
func buildinfo(cc str.CurrentConfiguration) string {
	// example:
	// 	Built:	2023-11-14@19:02:51		Golang:	go1.21.4
	//	System:	darwin-arm64			WKvCPU:	20/20
	//	Lemmas:	snowball			Tokens:	placeholders; rt=word
	//	Source:	files: tweets/**/*.csv		Mode:	cli
	const (
		BD = "\tS1Built:S0\tC3%sC0\t"
		GV = "\tS1Golang:S0\tC3%sC0\n"
		SY = "\tS1System:S0\tC3%s-%sC0\t"
		WC = "\t\tS1WKvCPU:S0\tC3%dC0/C3%dC0\n"
		LM = "\tS1Lemmas:S0\tC3%sC0\t\t"
		TK = "\tS1Tokens:S0\tC3%sC0\n"
		SR = "\tS1Source:S0\tC3%sC0\t"
		MO = "\tS1Mode:S0\tC3%sC0"
	)

	bi := ""
	if BuildDate != "" {
		bi = fmt.Sprintf(BD, BuildDate)
	}
	bi += fmt.Sprintf(GV, runtime.Version())
	bi += fmt.Sprintf(SY, runtime.GOOS, runtime.GOARCH)
	bi += fmt.Sprintf(WC, cc.WorkerCount, runtime.NumCPU())

	lm := cc.Lemmatizer
	if cc.LemmaFile != "" && lm != vv.DEFAULTLEMMATIZER {
		lm += ": " + cc.LemmaFile
	}
	bi += fmt.Sprintf(LM, lm)
	bi += fmt.Sprintf(TK, tokenmode(cc))

	mode := "cli"
	if cc.Serve {
		mode = fmt.Sprintf("serve on %s:%d", cc.HostIP, cc.HostPort)
	}
	bi += fmt.Sprintf(SR, sourcename(cc))
	bi += fmt.Sprintf(MO, mode)
	return bi
}

// tokenmode - how tweets are cleaned before they are counted
func tokenmode(cc str.CurrentConfiguration) string {
	if !cc.Preprocess {
		return "raw"
	}
	ph := "deleted"
	if cc.Placeholders {
		ph = "placeholders"
	}
	rt := "rt=word"
	if cc.LegacyRT {
		rt = "rt=anywhere"
	}
	return ph + "; " + rt
}

// sourcename - the first configured document source wins: files, then sqlite, then postgres
func sourcename(cc str.CurrentConfiguration) string {
	switch {
	case cc.Serve:
		return "requests"
	case cc.Input != "":
		return "files: " + cc.Input
	case cc.SQLiteDB != "":
		return "sqlite: " + cc.SQLiteDB
	case cc.PGLogin.Pass != "":
		return fmt.Sprintf("postgres: %s@%s/%s", cc.PGLogin.User, cc.PGLogin.Host, cc.PGLogin.DBName)
	default:
		return "none"
	}
}
