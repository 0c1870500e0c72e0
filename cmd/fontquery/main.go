// Command fontquery prints the descriptor and metrics of a logical font.
//
// Usage:
//
//	fontquery -font engine:title -text "Hello\nWorld"
//	fontquery -font app:body -table fonts.yaml -shaping
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gogpu/fontmetrics"
	"github.com/gogpu/fontmetrics/font"
	"github.com/gogpu/fontmetrics/text"
)

func main() {
	var (
		fontID    = flag.String("font", "engine:default", "logical font identifier")
		sample    = flag.String("text", "The quick brown fox\njumps over the lazy dog", "text to measure (\\n separates lines)")
		tablePath = flag.String("table", "", "YAML descriptor table merged over the built-in table")
		shaping   = flag.Bool("shaping", false, "measure advances with HarfBuzz shaping")
		verbose   = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		fontmetrics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		fontmetrics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	if err := run(font.Identifier(*fontID), strings.ReplaceAll(*sample, `\n`, "\n"), *tablePath, *shaping); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(id font.Identifier, sample, tablePath string, shaping bool) error {
	resolver, err := loadResolver(tablePath)
	if err != nil {
		return err
	}

	var opts []text.MeasurerOption
	if shaping {
		opts = append(opts, text.WithShaper(text.NewGoTextShaper()))
	}
	measurer := text.NewMeasurer(text.DefaultFamilies(), opts...)

	res := resolver.Resolve(id)
	face, err := measurer.Face(res.Descriptor)
	if err != nil {
		return err
	}

	adapter, err := font.New(id, measurer, font.NewDataFromFace(face, font.DefaultCharset), font.WithResolver(resolver))
	if err != nil {
		return err
	}

	lines := strings.Split(sample, "\n")
	size, err := adapter.Size(lines)
	if err != nil {
		return err
	}
	width, err := adapter.Width(sample)
	if err != nil {
		return err
	}
	height, err := adapter.Height(sample)
	if err != nil {
		return err
	}
	lineHeight, err := adapter.LineHeight()
	if err != nil {
		return err
	}

	if res.Fallback() {
		pterm.Warning.Println(res.Diagnostic)
	}
	pterm.Info.Printf("%s -> %s (%s)\n", id, res.Descriptor, face.Source().Name())

	data := pterm.TableData{
		{"metric", "value"},
		{"size (measured)", fmt.Sprintf("%d x %d", size.Width, size.Height)},
		{"width", strconv.Itoa(width)},
		{"height (nominal)", strconv.Itoa(height)},
		{"line height", strconv.Itoa(lineHeight)},
		{"base height", strconv.Itoa(adapter.BaseHeight())},
		{"underline offset", strconv.Itoa(adapter.UnderlineOffset())},
		{"underline thickness", strconv.Itoa(adapter.UnderlineThickness())},
		{"glyphs", strconv.Itoa(adapter.Data().Len())},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

func loadResolver(path string) (*font.Resolver, error) {
	if path == "" {
		return font.DefaultResolver(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	extra, err := font.LoadTable(f)
	if err != nil {
		return nil, err
	}
	return font.NewResolver(font.DefaultTable().Merge(extra), font.DefaultDescriptor), nil
}
