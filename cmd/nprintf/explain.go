package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/nprintf"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Output formats for -explain.
const (
	outMarkdown = "markdown"
	outJSON     = "json"
	outYAML     = "yaml"
)

// token is one row of an explained format string.
type token struct {
	Text      string `json:"text" yaml:"text"`
	Kind      string `json:"kind" yaml:"kind"`
	Flags     string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Width     string `json:"width,omitempty" yaml:"width,omitempty"`
	Precision string `json:"precision,omitempty" yaml:"precision,omitempty"`
	Length    string `json:"length,omitempty" yaml:"length,omitempty"`
}

func explainTokens(p nprintf.Printer, format string) []token {
	var rows []token
	for tok := range p.Tokens(format) {
		if !tok.Conv {
			rows = append(rows, token{Text: tok.Text, Kind: "literal"})
			continue
		}
		s := tok.Spec
		rows = append(rows, token{
			Text:      tok.Text,
			Kind:      s.Kind.String(),
			Flags:     s.Flags.String(),
			Width:     bound(s.WidthFrom, s.Width),
			Precision: bound(s.PrecFrom, s.Prec),
			Length:    s.Length.String(),
		})
	}
	return rows
}

func bound(from nprintf.Bound, n int) string {
	switch from {
	case nprintf.BoundLiteral:
		return strconv.Itoa(n)
	case nprintf.BoundArg:
		return "*"
	default:
		return ""
	}
}

func explain(w io.Writer, p nprintf.Printer, format, out string) error {
	rows := explainTokens(p, format)
	switch out {
	case outMarkdown, "":
		return writeMarkdown(w, rows)
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case outYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrBadOutput, out)
	}
}

var (
	markdownHeader = []string{"TEXT", "KIND", "FLAGS", "WIDTH", "PRECISION", "LENGTH"}
	// Numeric columns are right aligned.
	markdownRight = []bool{false, false, false, true, true, false}
)

func writeMarkdown(w io.Writer, rows []token) error {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{markdownCell(r.Text), r.Kind, markdownCell(r.Flags), r.Width, r.Precision, r.Length}
	}

	// Minimum 3 for alignment markers.
	widths := make([]int, len(markdownHeader))
	for i, col := range markdownHeader {
		widths[i] = max(3, runewidth.StringWidth(col))
	}
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	if err := writeMarkdownRow(w, markdownHeader, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if markdownRight[i] {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range cells {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		pad := strings.Repeat(" ", max(0, width-runewidth.StringWidth(cells[i])))
		if markdownRight[i] {
			padded[i] = pad + cells[i]
		} else {
			padded[i] = cells[i] + pad
		}
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// markdownCell makes blanks and control characters visible and escapes
// the column separator.
func markdownCell(s string) string {
	if s == "" {
		return ""
	}
	q := strconv.Quote(s)
	return "`" + strings.ReplaceAll(q, "|", `\|`) + "`"
}
