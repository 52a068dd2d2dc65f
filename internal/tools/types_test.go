package tools

import (
	"strings"
	"testing"
)

func TestTool_Matches(t *testing.T) {
	rg := Tool{Name: "ripgrep", Package: "ripgrep", CLI: "rg"}
	for _, s := range []string{"ripgrep", "rg"} {
		if !rg.Matches(s) {
			t.Errorf("expected %q to match", s)
		}
	}
	for _, s := range []string{"RG", "rip", "", "ripgrep "} {
		if rg.Matches(s) {
			t.Errorf("did not expect %q to match", s)
		}
	}
	fd := Tool{Name: "fd", Package: "fd-find", CLI: "fd"}
	if !fd.Matches("fd-find") {
		t.Errorf("package name should match")
	}
}

func TestRoster_Select(t *testing.T) {
	got := Default.Select("rg")
	if len(got) != 1 || got[0].Name != "ripgrep" {
		t.Fatalf("Select(rg) = %+v", got)
	}
	if all := Default.Select(""); len(all) != len(Default) || all[0].Name != "ripgrep" || all[3].Name != "fd" {
		t.Fatalf("empty selector should select all in order, got %+v", all)
	}
	if none := Default.Select("grep"); len(none) != 0 {
		t.Fatalf("expected no match, got %+v", none)
	}
}

func TestRoster_SelectDuplicates(t *testing.T) {
	r := Roster{
		{Name: "a", Package: "pkg", CLI: "x"},
		{Name: "b", Package: "pkg", CLI: "x"},
		{Name: "c", Package: "other", CLI: "x"},
	}
	got := r.Select("x")
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Fatalf("expected first-wins per package, got %+v", got)
	}
}

func TestRoster_Validate(t *testing.T) {
	if err := Default.Validate(); err != nil {
		t.Fatalf("default roster invalid: %v", err)
	}
	bad := Roster{
		{Name: "fd", Package: "fd-find", CLI: "fd"},
		{Name: "finder", Package: "finder", CLI: "fd"},
		{Name: "", Package: "x", CLI: "x"},
	}
	err := bad.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), `"fd" is shared`) || !strings.Contains(err.Error(), "empty field") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRoster_Identities(t *testing.T) {
	ids := Default.Identities()
	want := []string{"ripgrep", "rg", "exa", "bat", "fd", "fd-find"}
	if len(ids) != len(want) {
		t.Fatalf("Identities = %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Identities = %v, want %v", ids, want)
		}
	}
}
