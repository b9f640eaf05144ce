package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var GlobalLogger zerolog.Logger

var (
	componentsFilter = make(map[string]bool)
	all              = true
	lock             = sync.RWMutex{}
)

// ComponentFilterWriter drops records of components disabled by ApplyComponentsFilter.
type ComponentFilterWriter struct {
	Writer io.Writer
	Name   string
}

func (w ComponentFilterWriter) Write(p []byte) (n int, err error) {
	lock.RLock()
	enabled, found := componentsFilter[w.Name]
	lock.RUnlock()

	if !found {
		enabled = all
	}
	if !enabled {
		return len(p), nil
	}
	return w.Writer.Write(p)
}

func ApplyComponentsFilterEnv() {
	if logFilter := os.Getenv("SUIGQL_LOG_FILTER"); logFilter != "" {
		ApplyComponentsFilter(logFilter)
	}
}

// ApplyComponentsFilter enables or disables components by a colon-separated list,
// e.g. "all:-rpc-client". A leading '-' disables the component, "all" addresses every component.
func ApplyComponentsFilter(filter string) {
	comps := strings.Split(filter, ":")

	lock.Lock()
	defer lock.Unlock()

	for _, comp := range comps {
		if comp == "" {
			continue
		}

		enabled := true
		if comp[0] == '-' {
			enabled = false
			comp = comp[1:]
		}

		if comp == "all" {
			all = enabled
			for k := range componentsFilter {
				componentsFilter[k] = enabled
			}
		} else {
			componentsFilter[comp] = enabled
		}
	}
}

func SetupGlobalLogger(level string) {
	if err := TrySetupGlobalLevel(level); err != nil {
		panic(err)
	}
	GlobalLogger = NewLogger("global")
}

func TrySetupGlobalLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// defaults to INFO
func SetLogSeverityFromEnv() {
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(lvl)
	}
}

func makeBold(str any, disabled bool) string {
	const colorBold = 1

	if disabled {
		return fmt.Sprintf("%s", str)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", colorBold, str)
}

func makeComponentFormatter(noColor bool) zerolog.Formatter {
	return func(c any) string {
		return makeBold(fmt.Sprintf("[%s]\t", c), noColor)
	}
}

func NewLogger(component string) zerolog.Logger {
	return newConsoleLogger(component).With().
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

// NewLoggerWithWriter creates a JSON logger writing to the given writer.
// Mostly useful in tests.
func NewLoggerWithWriter(component string, writer io.Writer) zerolog.Logger {
	return zerolog.New(ComponentFilterWriter{
		Writer: writer,
		Name:   component,
	}).With().
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

func newConsoleLogger(component string) zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldComponent,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude:    []string{FieldComponent},
		FormatFieldValue: makeComponentFormatter(noColor),
		NoColor:          noColor,
	}
	return zerolog.New(ComponentFilterWriter{
		Writer: consoleWriter,
		Name:   component,
	})
}

func Nop() zerolog.Logger {
	return zerolog.Nop()
}
