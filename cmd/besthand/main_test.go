package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/besthand/internal/config"
	"github.com/lox/besthand/internal/report"
	"github.com/lox/besthand/poker"
)

func testGlobals(t *testing.T, out *bytes.Buffer) *Globals {
	t.Helper()
	return &Globals{
		Config: filepath.Join(t.TempDir(), "missing.hcl"),
		Format: "json",
		Stdout: out,
		Stderr: io.Discard,
	}
}

func decodeReport(t *testing.T, out *bytes.Buffer) report.Report {
	t.Helper()
	var rep report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	return rep
}

func TestParseCommandLine(t *testing.T) {
	t.Parallel()

	var cli CLI
	parser, err := kong.New(&cli, kongVars())
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--format", "toml", "wild", "TD", "TC", "5H", "5C", "7C", "?R", "?B"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ctx.Command(), "wild"), ctx.Command())
	assert.Equal(t, "toml", cli.Format)
	assert.Equal(t, config.DefaultFile, cli.Config)
	assert.Len(t, cli.Wild.Cards, 7)
}

func TestWildCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &WildCmd{Cards: []string{"TD TC 5H 5C 7C ?R ?B"}}
	require.NoError(t, cmd.Run(testGlobals(t, &out)))

	rep := decodeReport(t, &out)
	require.Len(t, rep.Hands, 1)
	assert.Equal(t, []string{"TD", "TC", "7C", "TS", "TH"}, rep.Hands[0].Best)
	assert.Equal(t, "Four of a Kind", rep.Hands[0].Category)
	assert.Equal(t, []int{7, 10, 7}, rep.Hands[0].Score)
	assert.Nil(t, rep.Summary)
}

func TestBestCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &BestCmd{Cards: strings.Fields("JD TC TH 7C 7D 7S 7H")}
	require.NoError(t, cmd.Run(testGlobals(t, &out)))

	rep := decodeReport(t, &out)
	require.Len(t, rep.Hands, 1)
	assert.Equal(t, []int{7, 7, 11}, rep.Hands[0].Score)

	out.Reset()
	cmd = &BestCmd{Cards: []string{"6C 7C 8C 9C TC 5C ?B"}}
	err := cmd.Run(testGlobals(t, &out))
	require.ErrorIs(t, err, poker.ErrUnexpectedJoker)
}

func TestRankCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &RankCmd{Cards: []string{"TC TD TH 8C 8S"}}
	require.NoError(t, cmd.Run(testGlobals(t, &out)))

	rep := decodeReport(t, &out)
	require.Len(t, rep.Hands, 1)
	assert.Equal(t, "Full House", rep.Hands[0].Category)
	assert.Equal(t, []int{6, 10, 8}, rep.Hands[0].Score)

	cmd = &RankCmd{Cards: []string{"TC TD TH 8C"}}
	require.ErrorIs(t, cmd.Run(testGlobals(t, &out)), poker.ErrInvalidHandSize)
}

func TestParseError(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &WildCmd{Cards: []string{"TD TC 5H 5C 7C ?X ?B"}}
	err := cmd.Run(testGlobals(t, &out))
	require.ErrorIs(t, err, poker.ErrMalformedCard)
	assert.Contains(t, err.Error(), "card 6")
}

func TestBatchCmd(t *testing.T) {
	t.Parallel()

	input := "6C 7C 8C 9C TC 5C JS\n# comment\nTD TC 5H 5C 7C ?R ?B\n"

	var out bytes.Buffer
	workers := 2
	cmd := &BatchCmd{File: "-", Workers: &workers, Stdin: strings.NewReader(input)}
	require.NoError(t, cmd.Run(testGlobals(t, &out)))

	rep := decodeReport(t, &out)
	require.Len(t, rep.Hands, 2)
	assert.Equal(t, []int{8, 10}, rep.Hands[0].Score)
	assert.Equal(t, []int{7, 10, 7}, rep.Hands[1].Score)
	require.NotNil(t, rep.Summary)
	assert.Equal(t, 2, rep.Summary.Hands)
}

func TestBatchCmdNoJokers(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &BatchCmd{File: "-", NoJokers: true, Stdin: strings.NewReader("TD TC 5H 5C 7C ?R ?B\n")}
	err := cmd.Run(testGlobals(t, &out))
	require.ErrorIs(t, err, poker.ErrUnexpectedJoker)
	assert.Contains(t, err.Error(), "line 1")
}

func TestBatchCmdReportsFileLine(t *testing.T) {
	t.Parallel()

	input := "# sample
6C 7C 8C 9C TC 5C JS

TD TC 5H 5C 7C 7C ?B
"

	var out bytes.Buffer
	cmd := &BatchCmd{File: "-", Stdin: strings.NewReader(input)}
	err := cmd.Run(testGlobals(t, &out))
	require.ErrorIs(t, err, poker.ErrDuplicateCard)
	assert.Contains(t, err.Error(), "line 4")
}

func TestSampleCmdRejectsNegativeCount(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := (&SampleCmd{Count: -1}).Run(testGlobals(t, &out))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count")
	assert.Empty(t, out.String())

	var cli CLI
	parser, err := kong.New(&cli, kongVars())
	require.NoError(t, err)
	_, err = parser.Parse([]string{"sample", "-n", "-1"})
	assert.Error(t, err)
}

func TestFormatFlagIgnoresCase(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	g := testGlobals(t, &out)
	g.Format = "JSON"
	g.LogLevel = "WARN"

	require.NoError(t, (&RankCmd{Cards: []string{"TC TD TH 8C 8S"}}).Run(g))
	rep := decodeReport(t, &out)
	require.Len(t, rep.Hands, 1)
	assert.Equal(t, []int{6, 10, 8}, rep.Hands[0].Score)
}

func TestSampleCmdIsReproducible(t *testing.T) {
	t.Parallel()

	run := func() report.Report {
		var out bytes.Buffer
		seed := int64(2024)
		cmd := &SampleCmd{Count: 25, Seed: &seed, Jokers: true}
		require.NoError(t, cmd.Run(testGlobals(t, &out)))
		return decodeReport(t, &out)
	}

	a, b := run(), run()
	require.Len(t, a.Hands, 25)
	assert.Equal(t, a.Hands, b.Hands)
	for _, rec := range a.Hands {
		assert.Len(t, rec.Input, poker.HandSize)
		assert.Len(t, rec.Best, poker.FiveCards)
		assert.NotContains(t, rec.Best, "?B")
		assert.NotContains(t, rec.Best, "?R")
	}
}

func TestTextOutputWithoutColor(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	g := testGlobals(t, &out)
	g.Format = "text"
	g.NoColor = true

	cmd := &WildCmd{Cards: []string{"6C 7C 8C 9C TC 5C ?B"}}
	require.NoError(t, cmd.Run(g))
	assert.Contains(t, out.String(), "7C 8C 9C TC JC")
	assert.Contains(t, out.String(), "Straight Flush")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestInvalidOverrides(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	g := testGlobals(t, &out)
	g.Format = "xml"
	err := (&RankCmd{Cards: []string{"TC TD TH 8C 8S"}}).Run(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestOutputFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	g := testGlobals(t, &out)
	g.Output = filepath.Join(t.TempDir(), "report.json")

	seed := int64(7)
	require.NoError(t, (&SampleCmd{Count: 3, Seed: &seed}).Run(g))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(g.Output)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Len(t, rep.Hands, 3)
}
