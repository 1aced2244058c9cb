package domain

import (
	"fmt"
	"strings"
)

// ATURI is a parsed at://authority/collection/rkey reference.
type ATURI struct {
	Authority  string
	Collection string
	RKey       string
}

// ParseATURI splits an at:// URI into its parts. Collection and rkey are
// required.
func ParseATURI(raw string) (ATURI, error) {
	rest, ok := strings.CutPrefix(raw, "at://")
	if !ok {
		return ATURI{}, fmt.Errorf("%w: %q is not an at:// uri", ErrValidation, raw)
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ATURI{}, fmt.Errorf("%w: %q must be at://authority/collection/rkey", ErrValidation, raw)
	}

	return ATURI{Authority: parts[0], Collection: parts[1], RKey: parts[2]}, nil
}

func (u ATURI) String() string {
	return "at://" + u.Authority + "/" + u.Collection + "/" + u.RKey
}

// PostID returns the trailing path segment of a post URI.
func PostID(postURI string) string {
	if i := strings.LastIndex(postURI, "/"); i >= 0 {
		return postURI[i+1:]
	}
	return postURI
}
