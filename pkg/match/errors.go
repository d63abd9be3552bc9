package match

import (
	"errors"
	"fmt"
)

// Kind classifies why a search string could not be turned into exactly
// one record.
type Kind int

const (
	UnsupportedFormat Kind = iota + 1
	NoCandidates
	NoMatch
	AmbiguousMatch
	UnknownAbbreviation
)

var (
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrNoCandidates        = errors.New("no candidates")
	ErrNoMatch             = errors.New("no match")
	ErrAmbiguousMatch      = errors.New("ambiguous match")
	ErrUnknownAbbreviation = errors.New("unknown abbreviation")
)

var sentinels = map[Kind]error{
	UnsupportedFormat:   ErrUnsupportedFormat,
	NoCandidates:        ErrNoCandidates,
	NoMatch:             ErrNoMatch,
	AmbiguousMatch:      ErrAmbiguousMatch,
	UnknownAbbreviation: ErrUnknownAbbreviation,
}

func (k Kind) String() string {
	if err, ok := sentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a terminal resolution failure. Listing holds the lines the
// user should see next to the message: every candidate for NoMatch, the
// matches for AmbiguousMatch, accepted shortcuts for UnknownAbbreviation.
type Error struct {
	Kind    Kind
	Input   string
	Message string
	Listing []string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap lets callers test the kind with errors.Is(err, ErrNoMatch).
func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

func newError(kind Kind, input string, listing []string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Input:   input,
		Message: fmt.Sprintf(format, args...),
		Listing: listing,
	}
}

// NoCandidatesError reports an empty child list under a parent record.
func NoCandidatesError(what, parent, hint string) *Error {
	msg := fmt.Sprintf("no %s found for %s", what, parent)
	if hint != "" {
		msg += "\n  → " + hint
	}
	return &Error{Kind: NoCandidates, Message: msg}
}
