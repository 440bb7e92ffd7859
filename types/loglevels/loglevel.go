package loglevels

import (
	"fmt"
	"strings"
)

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

const (
	TracePrefix = " [TRACE] "
	DebugPrefix = " [DEBUG] "
	InfoPrefix  = " [INFO] "
	WarnPrefix  = " [WARN] "
	ErrorPrefix = " [ERROR] "
)

// LogLevel is a type that represents a log level.
// The hierarchy of log levels is the following: TRACE < DEBUG < INFO < WARN < ERROR.
type LogLevel int

func (ll LogLevel) String() string {
	switch ll {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Parse converts a case-insensitive level name (as used in configs and flags) to a [LogLevel].
// "warning" is accepted as an alias of "warn".
func Parse(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TRACE, nil
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}
