//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/TweetTopics/internal/mm"
	"github.com/e-gun/TweetTopics/internal/str"
	"github.com/e-gun/TweetTopics/internal/vv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

var (
	Config = BuildDefaultConfig()
	Msg    = mm.NewMessageMaker()

	ErrMissingValue = errors.New("missing value for flag")
)

// ConfigAtLaunch - defaults, then the config file, then the environment, then the command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		FAIL2 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL3 = "Unknown topic model '%s'; using '%s'"
		FAIL4 = "Unknown lemmatizer '%s'; using '%s'"
		MSG1  = "'%s'%s loaded"
	)

	args := os.Args[1:]

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	cf := filepath.Join(h, vv.CONFIGPROLIX)
	if i := slices.Index(args, "-c"); i >= 0 && i+1 < len(args) {
		cf = args[i+1]
	} else {
		LookForConfigFile(h)
	}

	y := ""
	loaded, err := LoadConfigFile(cf)
	if err == nil {
		Config = loaded
	} else {
		y = " *not*"
		if !errors.Is(err, os.ErrNotExist) {
			Msg.CRIT(fmt.Sprintf(FAIL1, cf))
		}
	}

	// a missing .env is normal
	_ = godotenv.Load()
	ApplyEnvironment(Config)

	for _, a := range args {
		switch a {
		case "-h":
			help(h)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		}
	}

	Msg.EC(ParseArgs(args, Config))
	UpdateMessageMakerWithConfig(Msg)

	Msg.TMI(fmt.Sprintf(MSG1, cf, y))

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL2, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	if !slices.Contains(vv.KnownModels, Config.Model) {
		Msg.CRIT(fmt.Sprintf(FAIL3, Config.Model, vv.DEFAULTMODEL))
		Config.Model = vv.DEFAULTMODEL
	}

	if !slices.Contains(vv.KnownLemm, Config.Lemmatizer) {
		Msg.CRIT(fmt.Sprintf(FAIL4, Config.Lemmatizer, vv.DEFAULTLEMMATIZER))
		Config.Lemmatizer = vv.DEFAULTLEMMATIZER
	}
}

// ParseArgs - apply the command line switches to cfg
func ParseArgs(args []string, cfg *str.CurrentConfiguration) error {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"tweetsDB\" ,\"User\": \"ttp_rd\"}"`
	)

	next := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%w: %s", ErrMissingValue, args[i])
		}
		return args[i+1], nil
	}

	atoi := func(i int) (int, error) {
		s, err := next(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", args[i], err)
		}
		return n, nil
	}

	var err error
	for i, a := range args {
		switch a {
		case "-bw":
			cfg.BlackAndWhite = true
		case "-col":
			cfg.CSVColumn, err = atoi(i)
		case "-dm":
			cfg.DocMap = true
		case "-el":
			cfg.EchoLog, err = atoi(i)
		case "-gl":
			cfg.LogLevel, err = atoi(i)
		case "-in":
			cfg.Input, err = next(i)
		case "-k":
			cfg.Components, err = atoi(i)
		case "-lf":
			cfg.LemmaFile, err = next(i)
		case "-lm":
			cfg.Lemmatizer, err = next(i)
		case "-m":
			cfg.Model, err = next(i)
		case "-n":
			cfg.TopWords, err = atoi(i)
		case "-np":
			cfg.Preprocess = false
		case "-o":
			cfg.Output, err = next(i)
		case "-pc":
			cfg.ProfileCPU = true
		case "-pg":
			var js string
			if js, err = next(i); err == nil {
				var pl str.PostgresLogin
				if e := json.Unmarshal([]byte(js), &pl); e != nil {
					Msg.MAND(FAIL1)
					Msg.CRIT(FAIL2)
					err = e
				} else {
					cfg.PGLogin = pl
				}
			}
		case "-ph":
			cfg.Placeholders = true
		case "-pm":
			cfg.ProfileMEM = true
		case "-pq":
			cfg.PGQuery, err = next(i)
		case "-rt":
			cfg.LegacyRT = true
		case "-sa":
			cfg.HostIP, err = next(i)
		case "-serve":
			cfg.Serve = true
		case "-sp":
			cfg.HostPort, err = atoi(i)
		case "-sq":
			cfg.SQLiteDB, err = next(i)
		case "-wc":
			cfg.WorkerCount, err = atoi(i)
		default:
			// do nothing
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.ChartHeight = vv.DEFAULTCHRTHEIGHT
	c.ChartWidth = vv.DEFAULTCHRTWIDTH
	c.Components = vv.DEFAULTCOMPONENTS
	c.CSVColumn = vv.DEFAULTCSVCOLUMN
	c.DocMap = false
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.Features = vv.DEFAULTFEATURES
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.Input = vv.DEFAULTINPUT
	c.LegacyRT = false
	c.Lemmatizer = vv.DEFAULTLEMMATIZER
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.MapOutput = vv.DEFAULTMAPOUTPUT
	c.Model = vv.DEFAULTMODEL
	c.Output = vv.DEFAULTOUTPUT
	c.PGQuery = vv.DEFAULTPGQUERY
	c.Placeholders = false
	c.Preprocess = true
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.ReportDB = vv.DEFAULTREPORTDB
	c.Samples = vv.DEFAULTSAMPLES
	c.Serve = false
	c.SQLiteQuery = vv.DEFAULTSQLITEQUERY
	c.Title = vv.DEFAULTTITLE
	c.TopWords = vv.DEFAULTTOPWORDS
	c.WorkerCount = runtime.NumCPU()

	c.PGLogin = str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	return &c
}

// LookForConfigFile - write a config full of defaults into dir if there is not one there already
func LookForConfigFile(dir string) {
	const (
		MSG1  = "Wrote a default configuration file to '%s'"
		FAIL1 = "Could not write a default configuration file to '%s'"
	)

	fn := filepath.Join(dir, vv.CONFIGPROLIX)
	if _, err := os.Stat(fn); err == nil {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		// no ~/.config: leave the filesystem alone
		return
	}

	if err := WriteConfigFile(fn, BuildDefaultConfig()); err != nil {
		Msg.WARN(fmt.Sprintf(FAIL1, fn))
		return
	}
	Msg.FYI(fmt.Sprintf(MSG1, fn))
}

// WriteConfigFile - the indented JSON version of cfg; the password is never written
func WriteConfigFile(fn string, cfg *str.CurrentConfiguration) error {
	c := *cfg
	c.PGLogin.Pass = ""
	js, err := json.MarshalIndent(c, "", vv.JSONINDENT)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, js, vv.WRITEPERMS)
}

// LoadConfigFile - JSON or YAML (by extension) laid over the defaults
func LoadConfigFile(fn string) (*str.CurrentConfiguration, error) {
	raw, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	cfg := BuildDefaultConfig()
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, cfg)
	default:
		err = json.Unmarshal(raw, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("LoadConfigFile() '%s': %w", fn, err)
	}
	return cfg, nil
}

// ApplyEnvironment - TTP_PGPASS and TTP_PGUSER override whatever the file said
func ApplyEnvironment(cfg *str.CurrentConfiguration) {
	if p := os.Getenv(vv.ENVPGPASS); p != "" {
		cfg.PGLogin.Pass = p
	}
	if u := os.Getenv(vv.ENVPGUSER); u != "" {
		cfg.PGLogin.User = u
	}
}

func help(h string) {
	const (
		FAIL1 = "ConfigAtLaunch() failed to execute help text template"
	)

	PrintVersion(*Config)
	PrintBuildInfo(*Config)

	m := map[string]interface{}{
		"conffile":    filepath.Join(h, vv.CONFIGPROLIX),
		"cpus":        runtime.NumCPU(),
		"csvcol":      Config.CSVColumn,
		"echoll":      Config.EchoLog,
		"host":        Config.HostIP,
		"knownlemm":   strings.Join(vv.KnownLemm, "C0, C3"),
		"knownmodels": strings.Join(vv.KnownModels, "C0, C3"),
		"lemm":        Config.Lemmatizer,
		"model":       Config.Model,
		"out":         Config.Output,
		"pgq":         Config.PGQuery,
		"port":        Config.HostPort,
		"sqq":         Config.SQLiteQuery,
		"topics":      Config.Components,
		"topwords":    Config.TopWords,
		"ttpll":       Config.LogLevel,
		"workers":     Config.WorkerCount,
	}

	t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

	var b bytes.Buffer
	if ee := t.Execute(&b, m); ee != nil {
		Msg.CRIT(FAIL1)
	}
	fmt.Println(Msg.Styled(Msg.Color(b.String())))

	os.Exit(0)
}
