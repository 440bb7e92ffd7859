package logging

// Logger is the logging abstraction used across the module.
// Warn and Error accept optional errors that are rendered next to the message.
type Logger interface {
	Trace(message string)
	Debug(message string)
	Info(message string)
	Warn(message string, errs ...error)
	Error(message string, errs ...error)
	Close() error
}

// OrNoOps returns the logger itself, or a [NoOpsLogger] if it is nil.
func OrNoOps(logger Logger) Logger {
	if logger == nil {
		return NewNoOpsLogger()
	}
	return logger
}
