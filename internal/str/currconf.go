//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool          `json:"BlackAndWhite" yaml:"blackandwhite"`
	ChartHeight   string        `json:"ChartHeight" yaml:"chartheight"`
	ChartWidth    string        `json:"ChartWidth" yaml:"chartwidth"`
	Components    int           `json:"Components" yaml:"components"`
	CSVColumn     int           `json:"CSVColumn" yaml:"csvcolumn"`
	DocMap        bool          `json:"DocMap" yaml:"docmap"`
	EchoLog       int           `json:"EchoLog" yaml:"echolog"` // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Features      int           `json:"Features" yaml:"features"`
	HostIP        string        `json:"HostIP" yaml:"hostip"`
	HostPort      int           `json:"HostPort" yaml:"hostport"`
	Input         string        `json:"Input" yaml:"input"` // a doublestar glob
	LegacyRT      bool          `json:"LegacyRT" yaml:"legacyrt"`
	LemmaFile     string        `json:"LemmaFile" yaml:"lemmafile"`
	Lemmatizer    string        `json:"Lemmatizer" yaml:"lemmatizer"`
	LogLevel      int           `json:"LogLevel" yaml:"loglevel"`
	MapOutput     string        `json:"MapOutput" yaml:"mapoutput"`
	Model         string        `json:"Model" yaml:"model"`
	Output        string        `json:"Output" yaml:"output"`
	PGLogin       PostgresLogin `json:"PGLogin" yaml:"pglogin"`
	PGQuery       string        `json:"PGQuery" yaml:"pgquery"`
	Placeholders  bool          `json:"Placeholders" yaml:"placeholders"`
	Preprocess    bool          `json:"Preprocess" yaml:"preprocess"`
	ProfileCPU    bool          `json:"ProfileCPU" yaml:"profilecpu"`
	ProfileMEM    bool          `json:"ProfileMEM" yaml:"profilemem"`
	ReportDB      string        `json:"ReportDB" yaml:"reportdb"`
	Samples       int           `json:"Samples" yaml:"samples"`
	Serve         bool          `json:"Serve" yaml:"serve"`
	SQLiteDB      string        `json:"SQLiteDB" yaml:"sqlitedb"`
	SQLiteQuery   string        `json:"SQLiteQuery" yaml:"sqlitequery"`
	Title         string        `json:"Title" yaml:"title"`
	TopWords      int           `json:"TopWords" yaml:"topwords"`
	WorkerCount   int           `json:"WorkerCount" yaml:"workercount"`
}
