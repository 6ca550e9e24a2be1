package main

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/hlop3z/dtg/internal/cli"
)

//go:embed usage.md
var usage string

// printReadme writes the embedded usage guide, with headings styled on a terminal.
func printReadme(w io.Writer) error {
	cfg := cli.ConfigFor(w)
	for _, line := range strings.SplitAfter(usage, "\n") {
		if strings.HasPrefix(line, "#") {
			line = cfg.Header(strings.TrimSuffix(line, "\n")) + "\n"
		}
		if _, err := fmt.Fprint(w, line); err != nil {
			return err
		}
	}
	return nil
}
