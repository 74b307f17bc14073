package pet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRejected is returned for any issue title that is not a valid command.
var ErrRejected = errors.New("command rejected")

const titleSep = "|"

// ParseTitle extracts the instruction from an issue title of the form
// "INSTRUCTION|Octavia". Both segments are matched case-insensitively.
// Trailing empty segments ("FEED|Octavia|") are dropped before counting;
// anything other than exactly two non-empty segments is rejected.
func ParseTitle(title string) (Instruction, error) {
	parts := strings.Split(strings.TrimSpace(title), titleSep)
	for len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: want INSTRUCTION%sNAME, got %d segments", ErrRejected, titleSep, len(parts))
	}

	cmd := strings.ToUpper(strings.TrimSpace(parts[0]))
	name := strings.ToUpper(strings.TrimSpace(parts[1]))
	if cmd == "" {
		return 0, fmt.Errorf("%w: empty instruction", ErrRejected)
	}
	if name != strings.ToUpper(DefaultName) {
		return 0, fmt.Errorf("%w: unknown pet %q", ErrRejected, parts[1])
	}

	in, ok := lookupInstruction(cmd)
	if !ok {
		return 0, fmt.Errorf("%w: unknown instruction %q", ErrRejected, parts[0])
	}
	return in, nil
}
