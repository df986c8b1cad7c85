package api

import "errors"

// Kind classifies a failed notes API call.
type Kind int

const (
	// KindNetwork: the request could not be sent or the response could not be read.
	KindNetwork Kind = iota + 1
	// KindService: non-2xx status or an envelope whose status is not "success".
	KindService
	// KindDecode: the body is not valid JSON.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindService:
		return "service"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// DefaultMessage is shown when nothing more specific is known.
const DefaultMessage = "Check your internet connection"

// Error is returned by every Client operation on failure.
// Error() is the human-readable text that is shown to the user.
type Error struct {
	Kind    Kind
	Op      string
	Status  int    // HTTP status, 0 for network failures
	Message string // message from the service envelope, if any
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind == KindNetwork {
		return DefaultMessage
	}
	if fallback, ok := fallbackMessages[e.Op]; ok {
		return fallback
	}
	return DefaultMessage
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// operation names
const (
	OpListActive   = "list active notes"
	OpListArchived = "list archived notes"
	OpGet          = "get note"
	OpCreate       = "create note"
	OpArchive      = "archive note"
	OpUnarchive    = "unarchive note"
	OpDelete       = "delete note"
)

var fallbackMessages = map[string]string{
	OpListActive:   "Failed to fetch notes",
	OpListArchived: "Failed to fetch archived notes",
	OpGet:          "Failed to fetch note",
	OpCreate:       "Failed to create note",
	OpArchive:      "Failed to archive note",
	OpUnarchive:    "Failed to unarchive note",
	OpDelete:       "Failed to delete note",
}
