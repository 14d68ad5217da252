package plaintext

import (
	"context"
	"strings"

	"go.trai.ch/mist/internal/core/ports"
)

// Convert implements ports.MarkdownConverter. Headings become ATX headings,
// includes are inlined and runs of blank lines collapse into one.
func (c *Compiler) Convert(_ context.Context, world ports.World) (string, error) {
	src, err := parse(world)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	pendingBlank := false
	for _, l := range src.lines {
		if l.blank() {
			pendingBlank = b.Len() > 0
			continue
		}
		if pendingBlank || (l.heading > 0 && b.Len() > 0) {
			b.WriteByte('\n')
		}
		pendingBlank = false

		if l.heading > 0 {
			b.WriteString(strings.Repeat("#", l.heading))
			b.WriteByte(' ')
			b.WriteString(l.text)
			b.WriteString("\n")
			pendingBlank = true
			continue
		}
		b.WriteString(l.text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
