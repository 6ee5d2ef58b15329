package endzone250

import "fmt"

// Kind enumerates the CommandError variants the protocol engine can
// return, mirroring the CommandError enum of the original firmware
// simulator.
type Kind int

const (
	// InvalidFrame means the buffer had no '<'/'>' sentinels, or '>'
	// did not come strictly after '<'.
	InvalidFrame Kind = iota
	// TooShort means content was present but shorter than a command
	// requires.
	TooShort
	// InvalidAddress means the 2-hex-digit control address failed to
	// parse.
	InvalidAddress
	// InvalidCommandId means the 2-decimal-digit control op ID failed
	// to parse.
	InvalidCommandId
	// UnimplementedCommand means the op ID parsed but names no
	// supported operation.
	UnimplementedCommand
	// InvalidParameter means a field parsed out of range, non-hex, or
	// is semantically invalid for its command.
	InvalidParameter
)

func (k Kind) String() string {
	switch k {
	case InvalidFrame:
		return "InvalidFrame"
	case TooShort:
		return "TooShort"
	case InvalidAddress:
		return "InvalidAddress"
	case InvalidCommandId:
		return "InvalidCommandId"
	case UnimplementedCommand:
		return "UnimplementedCommand"
	case InvalidParameter:
		return "InvalidParameter"
	default:
		return "Unknown"
	}
}

// CommandError is returned by ProcessCommand for every parse-time or
// range error. ID carries the unimplemented op ID for Kind ==
// UnimplementedCommand; Cause carries the underlying parse error (if
// any) for Kind == InvalidAddress or InvalidCommandId.
type CommandError struct {
	Kind  Kind
	ID    int
	Cause error
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case UnimplementedCommand:
		return fmt.Sprintf("endzone250: unimplemented command id %d", e.ID)
	case InvalidAddress, InvalidCommandId:
		if e.Cause != nil {
			return fmt.Sprintf("endzone250: %s: %v", e.Kind, e.Cause)
		}
		return fmt.Sprintf("endzone250: %s", e.Kind)
	default:
		return fmt.Sprintf("endzone250: %s", e.Kind)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *CommandError with the same Kind,
// supporting errors.Is(err, &CommandError{Kind: TooShort}) style checks.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func errInvalidFrame() error        { return &CommandError{Kind: InvalidFrame} }
func errTooShort() error            { return &CommandError{Kind: TooShort} }
func errInvalidParameter() error    { return &CommandError{Kind: InvalidParameter} }
func errInvalidAddress(c error) error {
	return &CommandError{Kind: InvalidAddress, Cause: c}
}
func errInvalidCommandID(c error) error {
	return &CommandError{Kind: InvalidCommandId, Cause: c}
}
func errUnimplemented(id int) error {
	return &CommandError{Kind: UnimplementedCommand, ID: id}
}
