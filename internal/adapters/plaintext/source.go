// Package plaintext is a reference backend for plain-text documents.
//
// A source file is a sequence of lines. A line starting with "=" followed by
// a space is a heading, with one "=" per level. "#include FILE" splices in
// another file, resolved relative to the including file. Other lines are
// body text; blank lines separate paragraphs.
package plaintext

import (
	"fmt"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/zerr"
)

const includeDirective = "#include"

// line is one line of source after includes have been resolved.
type line struct {
	// file indexes source.files.
	file int
	// number is the zero-based line number inside its file.
	number int
	// col is the character column the text starts at.
	col     int
	text    string
	heading int
}

func (l line) blank() bool {
	return l.text == ""
}

// end returns the column after the last character of the text.
func (l line) end() int {
	return l.col + utf8.RuneCountInString(l.text)
}

func (l line) span() domain.Span {
	return domain.Span(uint64(l.file)<<32 | uint64(l.number+1))
}

// decodeSpan is the inverse of line.span.
func decodeSpan(s domain.Span) (file, number int) {
	return int(uint64(s) >> 32), int(uint64(s)&0xffffffff) - 1
}

// source is the parsed content of a world.
type source struct {
	files       []string
	lines       []line
	title       string
	diagnostics []domain.Diagnostic
}

func (s *source) hasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == domain.SeverityError {
			return true
		}
	}
	return false
}

// parse reads the entry of world and every file it includes.
// It fails only when the entry itself cannot be read.
func parse(world ports.World) (*source, error) {
	entry := world.Entry()
	if entry.Main == "" || entry.IsPackageFile() {
		return nil, zerr.With(domain.ErrFileNotFound, "entry", entry.Main)
	}

	content, err := world.Source(entry.Main)
	if err != nil {
		return nil, err
	}

	p := &parser{world: world, src: &source{}}
	p.file(path.Clean(entry.Main), content, nil)
	return p.src, nil
}

type parser struct {
	world ports.World
	src   *source
}

func (p *parser) file(name, content string, stack []string) {
	idx := len(p.src.files)
	p.src.files = append(p.src.files, name)
	stack = append(stack, name)

	for number, raw := range strings.Split(content, "\n") {
		raw = strings.TrimRight(raw, "\r")
		trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)
		col := utf8.RuneCountInString(raw) - utf8.RuneCountInString(trimmed)
		at := domain.SourceLocation{Filepath: name, Pos: domain.CharPosition{Line: number, Column: col}}

		switch {
		case strings.HasPrefix(trimmed, includeDirective):
			p.include(at, strings.TrimSpace(strings.TrimPrefix(trimmed, includeDirective)), stack)
		case strings.HasPrefix(trimmed, "#"):
			p.diagnose(domain.SeverityWarning, at, fmt.Sprintf("unknown directive %q ignored", strings.Fields(trimmed)[0]))
		default:
			l := line{file: idx, number: number, col: col, text: strings.TrimRightFunc(trimmed, unicode.IsSpace)}
			if level, text, ok := heading(l.text); ok {
				l.heading = level
				l.col += utf8.RuneCountInString(l.text) - utf8.RuneCountInString(text)
				l.text = text
				if level == 1 && idx == 0 && p.src.title == "" {
					p.src.title = text
				}
			}
			p.src.lines = append(p.src.lines, l)
		}
	}
}

func (p *parser) include(at domain.SourceLocation, target string, stack []string) {
	if target == "" {
		p.diagnose(domain.SeverityError, at, "include without a file")
		return
	}

	name := path.Join(path.Dir(at.Filepath), target)
	for _, f := range stack {
		if f == name {
			p.diagnose(domain.SeverityError, at, fmt.Sprintf("cyclic include of %s", name))
			return
		}
	}

	content, err := p.world.Source(name)
	if err != nil {
		p.diagnose(domain.SeverityError, at, fmt.Sprintf("cannot include %s: %v", name, err))
		return
	}
	p.file(name, content, stack)
}

func (p *parser) diagnose(severity domain.Severity, at domain.SourceLocation, msg string) {
	p.src.diagnostics = append(p.src.diagnostics, domain.Diagnostic{
		Severity: severity,
		Location: at,
		Message:  msg,
	})
}

// heading splits "== Text" into its level and text.
func heading(s string) (int, string, bool) {
	level := 0
	for level < len(s) && s[level] == '=' {
		level++
	}
	if level == 0 || level >= len(s) || s[level] != ' ' {
		return 0, "", false
	}
	text := strings.TrimSpace(s[level:])
	if text == "" {
		return 0, "", false
	}
	return level, text, true
}
