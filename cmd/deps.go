/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"io"
	"os"
)

// Filesystem seams, swappable in tests.
var (
	osStat = os.Stat
	osOpen = func(path string) (io.ReadCloser, error) { return os.Open(path) }
)
