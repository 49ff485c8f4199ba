package publisher

import "fmt"

// Kind classifies publisher failures so callers can tell transport problems
// apart from remote API rejections without parsing messages.
type Kind int

const (
	// KindTransport covers DNS, connection, and timeout failures.
	KindTransport Kind = iota
	// KindProtocol covers non-JSON or unexpected-shape responses.
	KindProtocol
	// KindRemote covers HTTP >= 400 responses with a structured error body.
	KindRemote
	// KindEmpty covers calls that succeed transport-wise but yield no
	// usable data, e.g. a user token managing no pages.
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindRemote:
		return "remote"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Error is the failure type for all Graph API operations. Remote errors
// carry the serialized remote error payload verbatim in Msg.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// PartialError reports a publish flow that created its post but failed a
// dependent later step. The created post id stays visible to the caller.
type PartialError struct {
	PostID string
	Err    error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("Post created (%s) but failed to post comment: %v", e.PostID, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }
