package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/keel/cmd/keel/internal/config"
	"github.com/go-drift/keel/cmd/keel/internal/term"
	"github.com/go-drift/keel/pkg/convert"
	"github.com/go-drift/keel/pkg/graphics"
	"github.com/go-drift/keel/pkg/swatch"
	"github.com/go-drift/keel/pkg/value"
)

func init() {
	RegisterCommand(&Command{
		Name:  "colors",
		Short: "Box, format and scan color swatches",
		Long: `Box sample swatches as values, format them to text, and scan a
swatch back out of text.

The input must match "name (color)" where color is a #RRGGBB hex
form or a palette name. Palette entries from keel.yaml extend the
built-in vocabulary. A deliberately malformed input is scanned too,
to show the failure mode.`,
		Usage: "keel colors [TEXT]",
		Run:   runColors,
	})
}

func runColors(args []string) error {
	input := "ConsoleGreen (#00FF00)"
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("unknown flag %q (see keel colors --help)", arg)
		}
		input = arg
	}

	cfg, err := config.Resolve(configPath, Version)
	if err != nil {
		return err
	}
	conv := swatch.Converter{Palette: cfg.Palette}

	samples := []swatch.Swatch{
		{Name: "ConsoleGreen", Color: graphics.RGB(0x00, 0xFF, 0x00)},
		{Name: "Alert", Color: graphics.RGB(0xFF, 0xA5, 0x00)},
	}
	term.Infof("formatted swatches:")
	for _, s := range samples {
		text := convert.FormatString(conv, value.Box(s))
		term.Infof("  %s %s", term.Block(s.Color), text)
	}

	term.Infof("scan %q", input)
	v, err := conv.Scan(value.Box(input))
	if err != nil {
		return err
	}
	s := value.MustAs[swatch.Swatch](v)
	term.Infof("  %s %s named %q", term.Block(s.Color), s.Color.Hex(), s.Name)
	term.Dump(s)

	// A swatch without a color spec must be refused, not guessed at.
	const malformed = "Invalid Format Console"
	_, err = conv.Scan(value.Box(malformed))
	if err == nil {
		return fmt.Errorf("malformed swatch text %q was accepted", malformed)
	}
	term.Infof("rejected %q: %v", malformed, err)

	var m value.Map
	m.Set("accent", value.Box(s))
	m.Set("label", value.Box(s.Name))
	term.Infof("map: %s", m.String())
	return nil
}
