package find

import (
	"errors"
	"strings"
)

var (
	ErrSubstituteFormat = errors.New("invalid format: use /pattern/replacement/")
	ErrEmptyPattern     = errors.New("search pattern cannot be empty")
)

// ParseSubstitute parses "/pattern/replacement/" as typed in the replace
// prompt. The trailing slash and a "g" flag are optional; every match is
// always replaced.
func ParseSubstitute(cmd string) (pattern, replacement string, err error) {
	parts := strings.SplitN(cmd, "/", 4)
	if len(parts) < 3 || parts[0] != "" {
		return "", "", ErrSubstituteFormat
	}
	if len(parts) == 4 && parts[3] != "" && parts[3] != "g" {
		return "", "", ErrSubstituteFormat
	}
	pattern = parts[1]
	replacement = parts[2]
	if pattern == "" {
		return "", "", ErrEmptyPattern
	}
	return pattern, replacement, nil
}
