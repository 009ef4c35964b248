// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import (
	"log/slog"
	"strings"
)

// INIOption configures an [INI] cursor.
type INIOption func(*INI)

// Comment sets the prefix which marks a line as a comment. The
// default is "#".
func Comment(prefix string) INIOption {
	return func(c *INI) {
		c.comment = prefix
	}
}

// Sections enables or disables bracketed section headers. They are
// enabled by default. When disabled, every entry belongs to the
// default empty section and a "[name]" line is treated like any
// other line without a separator.
func Sections(enabled bool) INIOption {
	return func(c *INI) {
		c.sections = enabled
	}
}

// SkippedLine registers f to be called for every non-blank,
// non-comment line the tokenizer skips because it carries no
// "key = value" separator. The default policy is to skip such
// lines silently.
func SkippedLine(f func(line int, text string)) INIOption {
	return func(c *INI) {
		c.skipped = f
	}
}

// LogSkipped is a [SkippedLine] policy which logs every skipped
// malformed line to the given logger at debug level.
func LogSkipped(log *slog.Logger) INIOption {
	return SkippedLine(func(line int, text string) {
		log.Debug(
			"skipped line without separator",
			slog.Int("line", line),
			slog.String("text", text),
		)
	})
}

// INI is a [Cursor] over the "[section] / key = value / # comment"
// textual format.
//
// Scanning consumes one line at a time. Blank lines and comment lines
// are skipped. A "[name]" line updates the section in effect and is
// itself not an entry. A line containing "=" is split at the first
// occurrence into a key and a value, both trimmed of surrounding
// whitespace. Any other line is skipped under the configured
// [SkippedLine] policy. No line continuation or escaping syntax
// exists.
type INI struct {
	buf      *Buffer
	comment  string
	sections bool
	skipped  func(int, string)

	pos     int
	line    int
	section string
	cur     Entry
	started bool
	done    bool
}

// NewINI returns an INI cursor over the given buffer, positioned
// before the first entry.
func NewINI(buf *Buffer, opts ...INIOption) *INI {
	c := &INI{
		buf:      buf,
		comment:  "#",
		sections: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AtEnd implements the [Cursor] interface.
func (c *INI) AtEnd() bool {
	return c.done
}

// Advance implements the [Cursor] interface. It scans forward until
// the next entry line or, if none remains, transitions the cursor to
// its end state.
func (c *INI) Advance() error {
	if c.done {
		return InvalidStateError{
			Op:     "parse.INI.Advance",
			Reason: "cursor is already at end of input",
		}
	}

	e, ok := c.scan()
	if !ok {
		c.done = true
		return nil
	}

	c.cur = e
	c.started = true
	return nil
}

// Entry implements the [Cursor] interface.
func (c *INI) Entry() (Entry, error) {
	if !c.started || c.done {
		return Entry{}, InvalidStateError{
			Op:     "parse.INI.Entry",
			Reason: "cursor is not positioned on an entry",
		}
	}

	e := c.cur
	e.Origin = c.buf.Origin()
	return e, nil
}

// Origin implements the [Cursor] interface.
func (c *INI) Origin() string {
	return c.buf.Origin()
}

// SetOrigin implements the [Cursor] interface.
func (c *INI) SetOrigin(path string) {
	c.buf.SetOrigin(path)
}

// scan consumes lines until it finds the next entry line. It reports
// false once the buffer is exhausted.
func (c *INI) scan() (Entry, bool) {
	for c.pos < len(c.buf.text) {
		line := c.nextLine()
		c.line++

		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, c.comment) {
			continue
		}

		if c.sections && strings.HasPrefix(t, "[") {
			if i := strings.IndexByte(t, ']'); i >= 0 {
				c.section = strings.TrimSpace(t[1:i])
				continue
			}
			// An unterminated header is not a section, nor an entry.
			c.skip(line)
			continue
		}

		if k, v, ok := strings.Cut(t, "="); ok {
			return Entry{
				Section: c.section,
				Key:     strings.TrimSpace(k),
				Value:   strings.TrimSpace(v),
			}, true
		}

		c.skip(line)
	}
	return Entry{}, false
}

func (c *INI) nextLine() string {
	text := c.buf.text
	end := strings.IndexByte(text[c.pos:], '\n')
	if end < 0 {
		line := text[c.pos:]
		c.pos = len(text)
		return strings.TrimSuffix(line, "\r")
	}

	line := text[c.pos : c.pos+end]
	c.pos += end + 1
	return strings.TrimSuffix(line, "\r")
}

func (c *INI) skip(line string) {
	if c.skipped == nil {
		return
	}
	c.skipped(c.line, line)
}
