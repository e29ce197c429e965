// Package report renders evaluation results as text, JSON or TOML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/besthand/poker"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat validates a lower-case format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or toml)", s)
	}
}

// Record is one evaluated hand.
type Record struct {
	Input    []string `json:"input,omitempty" toml:"input,omitempty"`
	Best     []string `json:"best" toml:"best"`
	Category string   `json:"category" toml:"category"`
	Score    []int    `json:"score" toml:"score"`
}

// NewRecord builds a record from an input hand and its best result.
func NewRecord(input []poker.Card, res poker.Result) Record {
	return Record{
		Input:    poker.Strings(input),
		Best:     res.Strings(),
		Category: res.Score.Type().String(),
		Score:    res.Score.Tuple(),
	}
}

// Summary aggregates a batch run.
type Summary struct {
	Hands      int            `json:"hands" toml:"hands"`
	Elapsed    string         `json:"elapsed" toml:"elapsed"`
	Categories map[string]int `json:"categories" toml:"categories"`
}

// Summarize counts results per category.
func Summarize(results []poker.Result, elapsed time.Duration) Summary {
	s := Summary{
		Hands:      len(results),
		Elapsed:    elapsed.String(),
		Categories: make(map[string]int),
	}
	for _, r := range results {
		s.Categories[r.Score.Type().String()]++
	}
	return s
}

// Report is a complete document.
type Report struct {
	Hands   []Record `json:"hands" toml:"hand"`
	Summary *Summary `json:"summary,omitempty" toml:"summary,omitempty"`
}

// Writer renders reports to an output stream.
type Writer struct {
	w      io.Writer
	format Format
	styles styles
}

type styles struct {
	header   lipgloss.Style
	category lipgloss.Style
	summary  lipgloss.Style
}

// NewWriter creates a writer. Colour only affects text output; with colour
// off the renderer is pinned to plain ASCII.
func NewWriter(w io.Writer, format Format, color bool) *Writer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Writer{
		w:      w,
		format: format,
		styles: styles{
			header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			category: r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			summary:  r.NewStyle().Foreground(lipgloss.Color("12")),
		},
	}
}

// Write renders the report in the writer's format.
func (w *Writer) Write(rep Report) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatTOML:
		enc := toml.NewEncoder(w.w)
		enc.Indent = "\t"
		return enc.Encode(rep)
	case FormatText, "":
		return w.writeText(rep)
	default:
		return fmt.Errorf("unknown output format %q", w.format)
	}
}

func (w *Writer) writeText(rep Report) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "HAND\tBEST\tSCORE\tCATEGORY")
	for _, rec := range rep.Hands {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			strings.Join(rec.Input, " "),
			strings.Join(rec.Best, " "),
			joinInts(rec.Score),
			w.styles.category.Render(rec.Category))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.SplitAfterN(buf.String(), "\n", 2)
	if _, err := io.WriteString(w.w, w.styles.header.Render(strings.TrimRight(lines[0], "\n"))+"\n"); err != nil {
		return err
	}
	if len(lines) > 1 {
		if _, err := io.WriteString(w.w, lines[1]); err != nil {
			return err
		}
	}

	if rep.Summary != nil {
		return w.writeSummary(*rep.Summary)
	}
	return nil
}

func (w *Writer) writeSummary(s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nEvaluated %d hands in %s\n", s.Hands, s.Elapsed)
	for t := poker.StraightFlush; ; t-- {
		if n := s.Categories[t.String()]; n > 0 {
			fmt.Fprintf(&b, "  %-16s %d\n", t.String(), n)
		}
		if t == poker.HighCard {
			break
		}
	}
	_, err := io.WriteString(w.w, w.styles.summary.Render(strings.TrimRight(b.String(), "\n"))+"\n")
	return err
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
