package tools

// Default is the fixed set of utilities oreutils manages.
var Default = Roster{
	{Name: "ripgrep", Package: "ripgrep", CLI: "rg"},
	{Name: "exa", Package: "exa", CLI: "exa"},
	{Name: "bat", Package: "bat", CLI: "bat"},
	{Name: "fd", Package: "fd-find", CLI: "fd"},
}
