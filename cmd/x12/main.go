// Command x12 is the CLI tool for x12tools.
// It provides commands for inspecting, querying, and rewriting X12 EDI files.
package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/865charlesw/x12tools/core/x12"
	"github.com/865charlesw/x12tools/internal/logging"
)

const version = "0.2.0"

// CLI defines the command-line interface for x12.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"warn"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text"`
	Generic   bool   `help:"Detect delimiters from fixed offsets instead of the ISA envelope"`

	Inspect InspectCmd `cmd:"" help:"List the segments of an X12 file"`
	Find    FindCmd    `cmd:"" help:"Print segments matching element patterns"`
	Remove  RemoveCmd  `cmd:"" help:"Remove matching segments and rewrite"`
	Fix     FixCmd     `cmd:"" help:"Recompute SE trailer counts and rewrite"`
	Convert ConvertCmd `cmd:"" help:"Parse and re-serialize (xz and newline handling)"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// detector returns the delimiter detection strategy selected by the
// global --generic flag.
func detector() x12.DelimiterDetector {
	if CLI.Generic {
		return x12.GenericDetector{}
	}
	return x12.EnvelopeDetector{}
}

// newlinesMode maps the shared --newlines flag value onto the tri-state
// serializer mode.
func newlinesMode(value string) (x12.Newlines, error) {
	switch value {
	case "auto":
		return x12.NewlinesAuto, nil
	case "on":
		return x12.NewlinesOn, nil
	case "off":
		return x12.NewlinesOff, nil
	}
	return x12.NewlinesAuto, fmt.Errorf("invalid newlines mode %q (want auto, on, or off)", value)
}

// InspectCmd lists the segments of a file with their indices.
type InspectCmd struct {
	Path string `arg:"" help:"Path to X12 file" type:"existingfile"`
}

func (c *InspectCmd) Run() error {
	doc, err := x12.ReadFile(c.Path, detector())
	if err != nil {
		return err
	}
	delims := doc.Delimiters()
	logging.Info("parsed document",
		"path", c.Path,
		"segments", doc.Len(),
		"element_separator", string(delims.Element),
		"segment_terminator", string(delims.Segment),
		"source_blake3", doc.SourceHash())
	for i, seg := range doc.Segments() {
		fmt.Printf("%4d  %s\n", i, strings.Join(seg.Elements(), string(delims.Element)))
	}
	return nil
}

// FindCmd prints segments matching positional element patterns.
type FindCmd struct {
	Path     string   `arg:"" help:"Path to X12 file" type:"existingfile"`
	Patterns []string `arg:"" help:"Element patterns, identifier first"`
}

func (c *FindCmd) Run() error {
	doc, err := x12.ReadFile(c.Path, detector())
	if err != nil {
		return err
	}
	matches, err := doc.Find(x12.ByElements(c.Patterns...))
	if err != nil {
		return err
	}
	sep := string(doc.Delimiters().Element)
	for _, m := range matches {
		fmt.Printf("%4d  %s\n", m.Index, strings.Join(m.Segment.Elements(), sep))
	}
	logging.Info("find complete", "path", c.Path, "matches", len(matches))
	return nil
}

// RemoveCmd removes matching segments and rewrites the file.
type RemoveCmd struct {
	Path     string   `arg:"" help:"Path to X12 file" type:"existingfile"`
	Patterns []string `arg:"" help:"Element patterns, identifier first"`
	All      bool     `help:"Remove every match instead of requiring exactly one"`
	Out      string   `help:"Output path (default: rewrite in place)" type:"path"`
	Newlines string   `help:"Newline mode (auto, on, off)" default:"auto"`
}

func (c *RemoveCmd) Run() error {
	mode, err := newlinesMode(c.Newlines)
	if err != nil {
		return err
	}
	doc, err := x12.ReadFile(c.Path, detector())
	if err != nil {
		return err
	}
	removed, err := doc.Remove(x12.ByElements(c.Patterns...), !c.All)
	if err != nil {
		return err
	}
	if err := doc.Write(c.Out, mode); err != nil {
		return err
	}
	logging.Info("segments removed", "path", c.Path, "removed", removed)
	fmt.Printf("Removed %d segment(s)\n", removed)
	return nil
}

// FixCmd recomputes SE trailer counts and rewrites the file. Serialization
// recomputes the counts itself, so writing the file back is all this
// command has to do.
type FixCmd struct {
	Path     string `arg:"" help:"Path to X12 file" type:"existingfile"`
	Out      string `help:"Output path (default: rewrite in place)" type:"path"`
	Newlines string `help:"Newline mode (auto, on, off)" default:"auto"`
}

func (c *FixCmd) Run() error {
	mode, err := newlinesMode(c.Newlines)
	if err != nil {
		return err
	}
	doc, err := x12.ReadFile(c.Path, detector())
	if err != nil {
		return err
	}
	if err := doc.Write(c.Out, mode); err != nil {
		return err
	}
	logging.Info("trailer counts rewritten", "path", c.Path)
	return nil
}

// ConvertCmd parses a file and re-serializes it to another path. Combined
// with .xz extensions this compresses or decompresses, and --newlines
// normalizes line endings.
type ConvertCmd struct {
	Path     string `arg:"" help:"Path to X12 file" type:"existingfile"`
	Out      string `required:"" help:"Output path" type:"path"`
	Newlines string `help:"Newline mode (auto, on, off)" default:"auto"`
}

func (c *ConvertCmd) Run() error {
	mode, err := newlinesMode(c.Newlines)
	if err != nil {
		return err
	}
	doc, err := x12.ReadFile(c.Path, detector())
	if err != nil {
		return err
	}
	if err := doc.Write(c.Out, mode); err != nil {
		return err
	}
	logging.Info("converted", "in", c.Path, "out", c.Out)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("x12 version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("x12"),
		kong.Description("x12tools - X12 EDI document toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
