package sync

import "errors"

// Sentinel errors returned by engine operations. The HTTP layer maps them to
// status codes with errors.Is.
var (
	// ErrInvalidPageToken is returned when a delta page token does not parse
	// as the numeric offset a previous page issued.
	ErrInvalidPageToken = errors.New("invalid page token")

	// ErrInvalidResolution is returned when a conflict resolution request
	// carries a strategy outside SERVER_WINS/CLIENT_WINS/MERGE.
	ErrInvalidResolution = errors.New("invalid conflict resolution")

	// ErrInvalidChange is returned when an inbound change fails structural
	// validation before processing starts.
	ErrInvalidChange = errors.New("invalid sync change")
)
