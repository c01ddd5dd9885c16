package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess  = 0 // Command completed
	ExitRejected = 1 // Scan completed and recommended REJECT
	ExitError    = 2 // Configuration or runtime error
)

// RejectionError indicates a command ran to completion but its result
// recommends against installing the skill.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var rejection *RejectionError
		if errors.As(err, &rejection) {
			os.Exit(ExitRejected)
		}

		os.Exit(ExitError)
	}
}
