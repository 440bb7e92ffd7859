package statuses

// Status represents the status of a search pipeline.
// The sequence of statuses is: running -> done / interrupted / timedOut.
// Only the first terminal status is kept, the later ones are ignored.
//
// Running - once the pipeline is created and the pairs start flowing.
// Done - once the terminal aggregation consumed every pair.
// Interrupted - once the pipeline is interrupted by the caller.
// TimedOut - once the pipeline or one of its stages reached its timeout.
type Status int32

const (
	Running Status = iota
	Done
	Interrupted
	TimedOut
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Interrupted:
		return "interrupted"
	case TimedOut:
		return "timedOut"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no other status can follow this one.
func (s Status) IsTerminal() bool {
	return s == Done || s == Interrupted || s == TimedOut
}
