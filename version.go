package main

import "fmt"

const (
	GENERATOR_NAME    = "Brainmade-Site"
	GENERATOR_VERSION = "0.2.0"
)

// Set at link stage via `-ldflags "-X main.GIT_COMMIT=$(git rev-parse --short HEAD)"`
var GIT_COMMIT string

var GENERATOR_SIGNATURE = fmt.Sprintf("%s (%s)", GENERATOR_NAME+"/"+GENERATOR_VERSION, func() string {
	if GIT_COMMIT != "" {
		return GIT_COMMIT
	}
	return "unknown"
}())
