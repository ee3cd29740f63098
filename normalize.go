package tweetgraph

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeUsername returns the canonical lowercase form of a username.
// Every map key and set member produced by this package goes through it.
func NormalizeUsername(name string) string {
	// Casers carry state and must not be shared across goroutines.
	return cases.Lower(language.Und).String(name)
}

// SameUser reports whether a and b name the same user, ignoring case.
func SameUser(a, b string) bool {
	return NormalizeUsername(a) == NormalizeUsername(b)
}
