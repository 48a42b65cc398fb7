// Package diagnostics converts the logger's byte-offset Msg pipeline into
// the wire shape a language-server transport expects: 0-indexed line/column
// positions, a severity string, a stable (plugin, rule) code, and related
// locations pulled from a Msg's Notes. Positions default to UTF-16 code
// units per the LSP convention; a flag switches to UTF-8 bytes for
// transports that don't need the conversion.
package diagnostics

import (
	"github.com/oxc-go/oxc/internal/logger"
)

// Severity is the wire severity of a reported diagnostic: an "off" rule
// reports nothing, so only error and warning exist here. A parse/semantic
// error always reports as SeverityError.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Position is a 0-indexed line/column pair. Column is measured in UTF-16
// code units unless the diagnostic was built with Encoding set to UTF8.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range is a half-open [Start, End) position pair.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Related is one entry of a Msg's Notes, carrying its own range when the
// note has a location.
type Related struct {
	Message string `json:"message"`
	Range   *Range `json:"range,omitempty"`
}

// Diagnostic is the wire shape of one Msg, per the external diagnostic
// interface: severity, a stable rule code, the message, an optional help
// string pulled from the first note when it has no location of its own, a
// primary range, and related locations.
type Diagnostic struct {
	Severity Severity  `json:"severity"`
	Plugin   string    `json:"plugin,omitempty"`
	Rule     string    `json:"rule,omitempty"`
	Message  string    `json:"message"`
	Help     string    `json:"help,omitempty"`
	Range    Range     `json:"range"`
	Related  []Related `json:"related,omitempty"`
}

// Encoding selects the unit a Position's Column is measured in.
type Encoding uint8

const (
	UTF16 Encoding = iota // LSP default
	UTF8
)

// FromMsg converts one logger.Msg, addressed against source, into wire
// form. source must be the same *logger.Source the Msg's location was
// computed against (Msg carries no source back-reference of its own).
func FromMsg(msg logger.Msg, source *logger.Source, enc Encoding) Diagnostic {
	d := Diagnostic{
		Severity: severityOf(msg.Kind),
		Message:  msg.Data.Text,
	}
	if code, ok := msg.Data.UserDetail.(*logger.RuleCode); ok && code != nil {
		d.Plugin = code.Plugin
		d.Rule = code.Rule
	}
	if msg.Data.Location != nil {
		d.Range = rangeOf(*msg.Data.Location, source, enc)
	}
	for _, note := range msg.Notes {
		rel := Related{Message: note.Text}
		if note.Location != nil {
			r := rangeOf(*note.Location, source, enc)
			rel.Range = &r
		} else if d.Help == "" {
			// A note with no location is documentation prose, not another
			// source reference; the first one becomes the diagnostic's help
			// text instead of a related location with no range.
			d.Help = note.Text
			continue
		}
		d.Related = append(d.Related, rel)
	}
	return d
}

func severityOf(kind logger.MsgKind) Severity {
	if kind == logger.Error {
		return SeverityError
	}
	return SeverityWarning
}

// rangeOf turns a byte-offset MsgLocation into a 0-indexed line/column
// Range, converting the column to UTF-16 units unless enc is UTF8.
func rangeOf(loc logger.MsgLocation, source *logger.Source, enc Encoding) Range {
	start := positionOf(loc.Line, loc.Column, loc.LineText, enc)
	end := Position{Line: start.Line, Column: start.Column + columnWidth(loc.LineText, loc.Column, loc.Length, enc)}
	return Range{Start: start, End: end}
}

func positionOf(line1Based int, byteColumn int, lineText string, enc Encoding) Position {
	col := byteColumn
	if enc == UTF16 {
		col = logger.ColumnCountUTF16(lineText, byteColumn)
	}
	return Position{Line: line1Based - 1, Column: col}
}

func columnWidth(lineText string, byteColumn int, byteLength int, enc Encoding) int {
	if enc == UTF8 {
		return byteLength
	}
	end := byteColumn + byteLength
	if end > len(lineText) {
		end = len(lineText)
	}
	return logger.ColumnCountUTF16(lineText, end) - logger.ColumnCountUTF16(lineText, byteColumn)
}
