package base

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps a standard library FlagSet so commands can render their
// options in help text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned, never printed.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the options section of a command's help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	buf.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&buf, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "0" && fl.DefValue != "false" {
			fmt.Fprintf(&buf, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&buf, "\n      %s\n", strings.ReplaceAll(fl.Usage, "\n", "\n      "))
	})

	return strings.TrimRight(buf.String(), "\n")
}
