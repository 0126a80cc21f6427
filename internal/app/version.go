package app

import (
	"fmt"
	"io"
	"strings"
)

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/agbru/tryfib/internal/app.Version=...".
var Version = "dev"

// valueFlags are the flags that consume the following argument when not
// written as -name=value.
var valueFlags = map[string]bool{"input": true, "n": true, "algo": true, "timeout": true, "log-format": true}

// HasVersionFlag reports whether args (without the program name) request the
// version. Scanning stops at the first non-flag argument or "--", and flag
// values are skipped, so "-input --version" is not a version request.
func HasVersionFlag(args []string) bool {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || len(a) < 2 || a[0] != '-' {
			return false
		}
		if a == "--version" || a == "-version" || a == "-V" {
			return true
		}
		name := strings.TrimLeft(a, "-")
		if !strings.Contains(name, "=") && valueFlags[name] {
			i++
		}
	}
	return false
}

// PrintVersion writes "tryfib <version>".
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "tryfib %s\n", Version)
}
