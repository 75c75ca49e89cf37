package base

import (
	"flag"
	"fmt"
	"strings"
)

// FlagSet adds generated help text to a flag.FlagSet.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

func (f *FlagSet) Help() string {
	var b strings.Builder
	f.VisitAll(func(fl *flag.Flag) {
		if b.Len() == 0 {
			b.WriteString("\n\nOptions:\n")
		}
		fmt.Fprintf(&b, "\n  -%s\n      %s", fl.Name, fl.Usage)
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "0s" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}

// StringsVar collects a flag that may be repeated.
type StringsVar []string

func (s *StringsVar) String() string {
	return strings.Join(*s, ",")
}

func (s *StringsVar) Set(v string) error {
	*s = append(*s, v)
	return nil
}
