//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"github.com/e-gun/TweetTopics/internal/vv"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	RESET   = "\033[0m"
	BLUE1   = "\033[38;5;38m"  // DeepSkyBlue2
	BLUE2   = "\033[38;5;68m"  // SteelBlue3
	CYAN1   = "\033[38;5;109m" // LightSkyBlue3
	CYAN2   = "\033[38;5;117m" // SkyBlue1
	GREEN   = "\033[38;5;70m"  // Chartreuse3
	RED1    = "\033[38;5;160m" // Red3
	RED2    = "\033[38;5;168m" // HotPink3
	YELLOW1 = "\033[38;5;178m" // Gold3
	YELLOW2 = "\033[38;5;143m" // DarkKhaki
	GREY1   = "\033[38;5;254m" // Grey89
	GREY2   = "\033[38;5;247m" // Grey62
	GREY3   = "\033[38;5;242m" // Grey42
	WHITE   = "\033[38;5;255m" // Grey93
	BLINK   = "\033[30;0;5m"
	PANIC   = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
	PANIC2  = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"
)

type MessageMaker struct {
	Lnc  time.Time
	BW   bool
	Clr  string // the caller, if any
	LLvl int
	LNm  string
	SNm  string
	Ver  string
	Win  bool
	Out  io.Writer
	mtx  sync.Mutex
}

// NewMessageMaker - a MessageMaker built from the vv defaults; lnch will update it once the config is known
func NewMessageMaker() *MessageMaker {
	return &MessageMaker{
		Lnc:  time.Now(),
		BW:   vv.BLACKANDWHITE,
		LLvl: vv.DEFAULTGOLOGLEVEL,
		LNm:  vv.MYNAME,
		SNm:  vv.SHORTNAME,
		Ver:  vv.VERSION,
		Win:  runtime.GOOS == "windows",
		Out:  os.Stdout,
	}
}

// NewFncMessageMaker - a copy of m that will report c as the caller in EC()
func (m *MessageMaker) NewFncMessageMaker(c string) *MessageMaker {
	return &MessageMaker{
		Lnc:  m.Lnc,
		BW:   m.BW,
		Clr:  c,
		LLvl: m.LLvl,
		LNm:  m.LNm,
		SNm:  m.SNm,
		Ver:  m.Ver,
		Win:  m.Win,
		Out:  m.Out,
	}
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, vv.MSGMAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, vv.MSGCRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, vv.MSGWARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, vv.MSGNOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, vv.MSGFYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, vv.MSGPEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, vv.MSGTMI) }

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[TTP] ExtractTopics() fitted 10 topics over 2,000 documents"

	if m.LLvl < threshold {
		return
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	if !m.Win && !m.BW {
		var color string

		switch threshold {
		case vv.MSGMAND:
			color = GREEN
		case vv.MSGCRIT:
			color = RED1
		case vv.MSGWARN:
			color = YELLOW2
		case vv.MSGNOTE:
			color = YELLOW1
		case vv.MSGFYI:
			color = CYAN2
		case vv.MSGPEEK:
			color = BLUE2
		case vv.MSGTMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Fprintf(m.out(), "[%s%s%s] %s%s%s\n", YELLOW1, m.SNm, RESET, color, message, RESET)
	} else {
		// terminal color codes not w's friend
		fmt.Fprintf(m.out(), "[%s] %s\n", m.SNm, message)
	}
}

func (m *MessageMaker) out() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}

// Color - color text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C7", "", "C0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("C1", YELLOW1, "C2", CYAN2, "C3", BLUE1, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C7", BLINK, "C0", RESET)
	}
	return swap.Replace(tagged)
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD    = "\033[1m"
		ITAL    = "\033[3m"
		UNDER   = "\033[4m"
		REVERSE = "\033[7m"
		STRIKE  = "\033[9m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S4", "", "S5", "", "S0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S4", STRIKE, "S5", REVERSE,
			"S0", RESET)
	}
	return swap.Replace(tagged)
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// EF - report error and function
func (m *MessageMaker) EF(err error, fn string) {
	if err != nil {
		fmt.Fprintf(m.out(), PANIC2, YELLOW2, m.LNm, m.Ver, RESET, CYAN2, fn, RESET, RED1, RESET)
		fmt.Fprintln(m.out(), err)
		m.ExitOrHang(1)
	}
}

// EC - report error and the caller
func (m *MessageMaker) EC(err error) {
	if err != nil {
		if m.Clr != "" {
			fmt.Fprintf(m.out(), PANIC2, YELLOW2, m.LNm, m.Ver, RESET, CYAN2, m.Clr, RESET, RED1, RESET)
		} else {
			fmt.Fprintf(m.out(), PANIC, YELLOW2, m.LNm, m.Ver, RESET, RED1, RESET)
		}
		fmt.Fprintln(m.out(), err)
		m.ExitOrHang(1)
	}
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if !m.Win {
		os.Exit(e)
	} else {
		m.Emit(fmt.Sprintf(HANG, m.LNm, SUSP), vv.MSGMAND)
		time.Sleep(SUSP * time.Second)
		os.Exit(e)
	}
}

// LogPaths - report the heap after a route has finished
func (m *MessageMaker) LogPaths(fn string) {
	// sample output:
	// "[TTP] RtTopicsRun() current heap: 340M"
	const (
		HEAP = "%s current heap: %s"
	)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	m.Emit(fmt.Sprintf(HEAP, fn, fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)), vv.MSGPEEK)
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[B2: 3.764s][Δ: 1.024s] vectorized 2000 documents"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, vv.TIMETRACKERMSGTHRESH)
}
