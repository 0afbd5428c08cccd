package utils

import (
	"io"
	"strings"
	"text/tabwriter"
)

func NewTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func Row(w *tabwriter.Writer, cols ...string) {
	io.WriteString(w, strings.Join(cols, "\t")+"\n")
}

func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// RefLabel renders a reference that may or may not have been populated.
func RefLabel(id, name string) string {
	if name == "" {
		return id
	}
	if id == "" {
		return name
	}
	return name + " (" + id + ")"
}
