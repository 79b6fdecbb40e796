package site

import "errors"

var (
	// ErrNoPages signals a build with nothing to write.
	ErrNoPages = errors.New("no pages to build")
)
