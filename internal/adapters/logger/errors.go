package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by errors that report their own message without
// the messages of their causes, such as zerr.Error.
type messager interface {
	Message() string
}

// metadataer is implemented by errors carrying key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. Errors that cannot report their
// own message end the walk with their full text. Metadata of links without a
// message, as added by zerr.With on a plain error, moves to the next link.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)
	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var md map[string]any
		if e, ok := current.(metadataer); ok {
			md = e.Metadata()
		}
		if pending != nil {
			if md == nil {
				md = make(map[string]any, len(pending))
			}
			maps.Copy(md, pending)
			pending = nil
		}

		if m.Message() == "" {
			pending = md
			continue
		}
		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: md})
	}
	return entries
}

// formatErrorEntries renders entries as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, e := range entries {
		msg := strings.Split(e.Message, "\n")

		indent := "       "
		if i == 0 {
			lines = append(lines, "Error: "+msg[0])
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msg[0])
			indent = "      "
		}

		for _, l := range msg[1:] {
			lines = append(lines, indent+l)
		}
		for _, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, e.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
