package tweetgraph

import "errors"

// ErrInvalidArgument is returned when an operation is handed input for which
// its result is undefined, such as the time range of zero posts.
// Callers match it with errors.Is; returned errors wrap it with context.
var ErrInvalidArgument = errors.New("invalid argument")
