package buildinfo

import "fmt"

// Set via -ldflags at build time.
var (
	BuildVersion string
	BuildDate    string
	BuildCommit  string
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func PrintBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(BuildVersion))
	fmt.Printf("Build date: %s\n", orNA(BuildDate))
	fmt.Printf("Build commit: %s\n", orNA(BuildCommit))
}
