package tools

import (
	"errors"
	"fmt"
	"strings"
)

// Tool describes one managed utility.
type Tool struct {
	Name    string // human label
	Package string // crate name on the registry
	CLI     string // executable users type
}

// Matches reports whether selector equals the tool's name, package or cli.
// Matching is exact and case-sensitive.
func (t Tool) Matches(selector string) bool {
	return selector == t.Name || selector == t.Package || selector == t.CLI
}

func (t Tool) identities() []string {
	return []string{t.Name, t.Package, t.CLI}
}

// Roster is an ordered, read-only list of tools.
type Roster []Tool

// Select returns the tools matching selector in roster order. An empty
// selector selects everything. Entries sharing a package are collapsed to
// the first one so a crate is never built twice in one run.
func (r Roster) Select(selector string) []Tool {
	out := make([]Tool, 0, len(r))
	seen := map[string]bool{}
	for _, t := range r {
		if selector != "" && !t.Matches(selector) {
			continue
		}
		if seen[t.Package] {
			continue
		}
		seen[t.Package] = true
		out = append(out, t)
	}
	return out
}

// Identities lists every selector the roster understands, in order.
func (r Roster) Identities() []string {
	out := make([]string, 0, len(r)*3)
	seen := map[string]bool{}
	for _, t := range r {
		for _, id := range t.identities() {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// Validate checks that every field is set and that no two tools share an
// identity field.
func (r Roster) Validate() error {
	var errs []error
	owner := map[string]int{}
	for i, t := range r {
		if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Package) == "" || strings.TrimSpace(t.CLI) == "" {
			errs = append(errs, fmt.Errorf("tool #%d has an empty field: %+v", i, t))
			continue
		}
		ids := map[string]bool{}
		for _, id := range t.identities() {
			// a tool may reuse a value across its own fields (bat/bat/bat)
			if ids[id] {
				continue
			}
			ids[id] = true
			if j, ok := owner[id]; ok {
				errs = append(errs, fmt.Errorf("%q is shared by %s and %s", id, r[j].Name, t.Name))
				continue
			}
			owner[id] = i
		}
	}
	return errors.Join(errs...)
}
