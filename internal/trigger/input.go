// Package trigger runs one automation invocation against the pet: it takes
// the issue fields handed over by the workflow, applies decay and the
// requested instruction, and produces the reply document.
package trigger

import (
	"os"
	"strings"
)

// Fallbacks used when the workflow provides no issue, e.g. a manual run.
const (
	testTitle     = "FEED|Octavia"
	testAuthor    = "test-user"
	unknownAuthor = "unknown"
)

// Input holds the issue fields an invocation is driven by. Body is carried
// for logging only.
type Input struct {
	Title  string
	Body   string
	Author string
	Issue  string
}

// FromEnv reads ISSUE_TITLE, ISSUE_BODY, ISSUE_AUTHOR and ISSUE_NUMBER.
func FromEnv() Input {
	return Input{
		Title:  os.Getenv("ISSUE_TITLE"),
		Body:   os.Getenv("ISSUE_BODY"),
		Author: os.Getenv("ISSUE_AUTHOR"),
		Issue:  os.Getenv("ISSUE_NUMBER"),
	}
}

// Normalize fills defaults. An empty title switches to test mode.
func (in Input) Normalize() (Input, bool) {
	testMode := false
	if strings.TrimSpace(in.Title) == "" {
		in.Title = testTitle
		in.Author = testAuthor
		testMode = true
	}
	if strings.TrimSpace(in.Author) == "" {
		in.Author = unknownAuthor
	}
	return in, testMode
}
