// Package props renders flat key=value configuration blocks in the
// Java properties style consumed by Minecraft config files.
package props

import (
	"strings"
	"time"
)

// Property is a single key=value entry. Entries are rendered in slice
// order, so callers control line order.
type Property struct {
	Key   string
	Value string
}

// Stubbed in tests.
var now = time.Now

// Render produces the text block for entries. A non-empty header is
// emitted first as a comment line, followed by a timestamp comment
// unless timestamp is false. No escaping is applied to keys or values.
func Render(entries []Property, header string, timestamp bool) string {
	lines := make([]string, 0, len(entries)+2)
	if header != "" {
		lines = append(lines, "# "+header)
	}
	if timestamp {
		lines = append(lines, "# "+now().UTC().Format(time.RFC1123))
	}
	for _, p := range entries {
		lines = append(lines, p.Key+"="+p.Value)
	}
	return strings.Join(lines, "\n")
}
