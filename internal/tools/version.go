package tools

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
)

var verRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

// VersionBrokenError means `<cli> --version` ran but did not yield a
// usable version. Raw holds the offending text when there was any.
type VersionBrokenError struct {
	Raw    string
	HasRaw bool
}

func (e *VersionBrokenError) Error() string {
	if e.HasRaw {
		return fmt.Sprintf("could not parse %s", e.Raw)
	}
	return "unexpected version output"
}

// ParseInstalledVersion extracts the first x.y.z triple from the first
// line of a version banner such as "bat 0.18.3" or
// "ripgrep 13.0.0 (rev af6b6c543b)".
func ParseInstalledVersion(out []byte) (*semver.Version, error) {
	if !utf8.Valid(out) {
		return nil, &VersionBrokenError{}
	}
	s := string(out)
	if s == "" {
		return nil, &VersionBrokenError{}
	}
	line, _, _ := strings.Cut(s, "\n")
	line = strings.TrimSuffix(line, "\r")

	m := verRe.FindString(line)
	if m == "" {
		return nil, &VersionBrokenError{Raw: line, HasRaw: true}
	}
	v, err := semver.StrictNewVersion(m)
	if err != nil {
		return nil, &VersionBrokenError{Raw: m, HasRaw: true}
	}
	return v, nil
}
