package output

// Result is the compositor's answer to a configuration.
type Result int

const (
	// ResultPending means no answer has been received yet.
	ResultPending Result = iota
	Succeeded
	Failed
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Err maps the result to an error; nil for Succeeded.
func (r Result) Err() error {
	switch r {
	case Succeeded:
		return nil
	case Failed:
		return ErrTransactionFailed
	case Cancelled:
		return ErrTransactionCancelled
	default:
		return ErrTransactionPending
	}
}
