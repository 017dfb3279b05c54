//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MSGMAND = -1
	MSGCRIT = 0
	MSGWARN = 1
	MSGNOTE = 2
	MSGFYI  = 3
	MSGPEEK = 4
	MSGTMI  = 5

	TIMETRACKERMSGTHRESH = MSGFYI

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bwC0          disable color output in the console
   C1-cC0 C2{file}C0     read configuration from this JSON or YAML file [C6defaultC0: C3{{.conffile}}C0]
   C1-colC0 C2{num}C0   column to read when the input is CSV [C6currentC0: C3{{.csvcol}}C0]
   C1-dmC0          also build a document map
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-glC0 C2{num}C0    set golang log level (C1-1-5C0) [C6currentC0: C3{{.ttpll}}C0]
   C1-hC0           print this help information
   C1-inC0 C2{glob}C0   read documents from the files matching this pattern: e.g., "C4data/**/*.txtC0"
   C1-kC0 C2{num}C0     number of topics; must be even [C6currentC0: C3{{.topics}}C0]
   C1-lfC0 C2{file}C0    lemma dictionary: JSON for "dict"; tab-separated or sqlite db for "sqlite"
   C1-lmC0 C2{string}C0  lemmatizer; available: C3{{.knownlemm}}C0 [C6currentC0: C3{{.lemm}}C0]
   C1-mC0 C2{string}C0   topic model; available: C3{{.knownmodels}}C0 [C6currentC0: C3{{.model}}C0]
   C1-nC0 C2{num}C0     top words per topic [C6currentC0: C3{{.topwords}}C0]
   C1-npC0          do not preprocess the documents before vectorizing
   C1-oC0 C2{file}C0     write the chart here [C6currentC0: C3{{.out}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-pgC0 C2{string}C0  supply full PostgreSQL credentials C4(*)C0
   C1-pqC0 C2{string}C0  PostgreSQL query that yields one text column [C6currentC0: C3{{.pgq}}C0]
   C1-phC0          use placeholders for mentions, links, and hashtags instead of deleting them
   C1-rtC0          legacy retweet stripping: remove "rt" anywhere, not just as a word
   C1-saC0 C2{string}C0  server IP address [C6currentC0: C3{{.host}}C0]
   C1-serveC0       run as a server instead of processing files
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-sqC0 C2{file}C0    read documents from this sqlite database via C3{{.sqq}}C0
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]
     (*) S3exampleS0:
         C4"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"tweetsDB\" ,\"User\": \"ttp_rd\"}"C0

   the PostgreSQL password can also be set via C3TTP_PGPASSC0 in the environment or in a C3.envC0 file
`
)
