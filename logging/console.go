package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/n0rdy/palindromes/types/loglevels"
)

// ConsoleLogger is a logger that prints plain text lines to a writer, stdout by default.
//
// ConsoleLogger accepts a log level as a parameter.
// It will print only those logs that have a level equal or higher than the specified one.
// Check [loglevels.LogLevel] for more details.
//
// The format of logs is: "time [log level] message"
// Example:
// 2006-01-02T15:04:05.999999999Z07:00 [INFO] some cool info message
type ConsoleLogger struct {
	level loglevels.LogLevel
	out   io.Writer
	mu    sync.Mutex
}

func NewConsoleLogger(level loglevels.LogLevel) Logger {
	return NewConsoleLoggerTo(os.Stdout, level)
}

// NewConsoleLoggerTo creates a [ConsoleLogger] that writes to the provided writer.
func NewConsoleLoggerTo(out io.Writer, level loglevels.LogLevel) Logger {
	return &ConsoleLogger{
		level: level,
		out:   out,
	}
}

func (cl *ConsoleLogger) Trace(message string) {
	cl.print(loglevels.TRACE, loglevels.TracePrefix, message)
}

func (cl *ConsoleLogger) Debug(message string) {
	cl.print(loglevels.DEBUG, loglevels.DebugPrefix, message)
}

func (cl *ConsoleLogger) Info(message string) {
	cl.print(loglevels.INFO, loglevels.InfoPrefix, message)
}

func (cl *ConsoleLogger) Warn(message string, errs ...error) {
	cl.print(loglevels.WARN, loglevels.WarnPrefix, messageWithErrors(message, errs))
}

func (cl *ConsoleLogger) Error(message string, errs ...error) {
	cl.print(loglevels.ERROR, loglevels.ErrorPrefix, messageWithErrors(message, errs))
}

func (cl *ConsoleLogger) Close() error {
	return nil
}

func (cl *ConsoleLogger) print(level loglevels.LogLevel, prefix string, message string) {
	if cl.level > level {
		return
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	fmt.Fprintln(cl.out, time.Now().Format(time.RFC3339Nano)+prefix+message)
}

func messageWithErrors(message string, errs []error) string {
	if len(errs) == 0 {
		return message
	}

	errMessages := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			errMessages = append(errMessages, err.Error())
		}
	}
	if len(errMessages) == 0 {
		return message
	}
	return message + ": " + strings.Join(errMessages, "; ")
}
