package secretscan

import (
	"io"
	"os"

	"golang.org/x/term"
)

func pickString(cli string, local *string, def string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	return def
}

func pickInt64(cli int64, local *int64, def int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	return def
}

// useColor reports whether w is a terminal that should get styled output.
func useColor(noColor bool, w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
