package output

import "errors"

var (
	ErrDisplayNotFound = errors.New("display not found")
	ErrNoCurrentMode   = errors.New("display has no current mode, it is probably off")
	ErrNoPosition      = errors.New("display has no position")
	ErrModeNotFound    = errors.New("mode not found")
	ErrNoPreferredMode = errors.New("display has no preferred mode")
	ErrNoCommonMode    = errors.New("no common mode")

	ErrTransactionFailed    = errors.New("configuration failed")
	ErrTransactionCancelled = errors.New("configuration cancelled")
	// ErrTransactionPending is returned by Result.Err before the
	// compositor answered.
	ErrTransactionPending = errors.New("configuration still pending")

	// ErrUnknownObject is returned by State.Apply for events about an
	// identity the model has never seen.
	ErrUnknownObject = errors.New("unknown object")
)
