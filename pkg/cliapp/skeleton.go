package cliapp

import (
	_ "embed"
)

//go:embed skeleton.txt
var skeleton string

// Skeleton returns the source code of a small example program
// that can be used as a starting point.
func Skeleton() string {
	return skeleton
}
