//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Tweet Topics"
	SHORTNAME = "TTP"
	VERSION   = "0.3.1"
	PROJURL   = "https://github.com/e-gun/TweetTopics"

	BLACKANDWHITE       = false
	CONFIGALTAPTH       = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGPROLIX        = "ttp-config.json"
	CONFIGSTOPS         = "ttp-stops-english.json"
	DEFAULTCHRTHEIGHT   = "420px"
	DEFAULTCHRTWIDTH    = "100%"
	DEFAULTCSVCOLUMN    = 0
	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 2
	DEFAULTINPUT        = ""
	DEFAULTOUTPUT       = "ttp-topics.html"
	DEFAULTMAPOUTPUT    = "ttp-docmap.html"
	DEFAULTPSQLHOST     = "127.0.0.1"
	DEFAULTPSQLUSER     = "ttp_rd"
	DEFAULTPSQLPORT     = 5432
	DEFAULTPSQLDB       = "tweetsDB"
	DEFAULTPGQUERY      = "SELECT tweet_text FROM tweets"
	DEFAULTSQLITEQUERY  = "SELECT tweet_text FROM tweets"
	DEFAULTREPORTDB     = "ttp-reports.db"
	ENVPGPASS           = "TTP_PGPASS"
	ENVPGUSER           = "TTP_PGUSER"
	JSONINDENT          = "  "
	MAXECHOREQPERSECOND = 20
	MAXDOCSPERRUN       = 250000
	PROGRESSEVERY       = 250
	SERVEDFROMHOST      = "127.0.0.1"
	SERVEDFROMPORT      = 8050
	WRITEPERMS          = 0644
)

//
// TOPIC MODELING DEFAULTS
//

const (
	DEFAULTSAMPLES    = 2000
	DEFAULTFEATURES   = 1000
	DEFAULTCOMPONENTS = 10
	DEFAULTTOPWORDS   = 20
	DEFAULTMODEL      = "lda"
	DEFAULTLEMMATIZER = "none"
	DEFAULTTITLE      = "Categories in LDA model"
	MAXCOMPONENTS     = 40
	MAXTOPWORDS       = 100
	NGRAMMIN          = 1
	NGRAMMAX          = 2
	NGRAMJOINER       = " "

	// online learning: five passes over the corpus with a decay offset of 50
	LDAITER           = 5
	LDALEARNINGOFFSET = 50
	LDASEED           = 0
	LDABATCHSIZE      = 128
	LDAXFORMPASSES    = 50
	LDABURNINPASSES   = 1
	GSDMMITER         = 30
	GSDMMALPHA        = 0.1
	GSDMMBETA         = 0.1
	GSDMMSEED         = 1337
)

//
// TEXT CLEANING
//

const (
	MENTIONPLACEHOLDER = "<-@->"
	URLPLACEHOLDER     = "<-URL->"
	HASHPLACEHOLDER    = "<-#->"
	STRIPSYMBOLS       = "!\"$%&()*+,./:;=?[]^_`{|}~"
	REDUCELENMAX       = 3
)

var (
	// CorpusStops - the extra items handed to the vectoriser alongside the standard stop words
	CorpusStops = []string{"<-url->", "<-@->", "<-#->", "...", "`", ",", "-", "'"}
	KnownModels = []string{"lda", "gsdmm"}
	KnownLemm   = []string{"none", "snowball", "dict", "sqlite"}
)
