// Package term renders the CLI's leveled, colorized output.
//
// Library packages return errors and never print; everything the keel
// command shows a user funnels through here so color handling and
// verbosity live in one place. Color output follows the color library's
// global NoColor, which honors NO_COLOR and non-terminal output.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/go-drift/keel/pkg/graphics"
)

// Verbose enables Debugf and Dump output. Set by the --verbose flag.
var Verbose bool

// Output levels, in decreasing severity.
const (
	LevelError = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// LevelSpec is the tag and colorizer for an output level.
type LevelSpec struct {
	ID        int
	Name      string
	Colorizer func(a ...any) string
}

// LevelSpecs give each level its tag and color, in level order.
var LevelSpecs = []LevelSpec{
	{LevelError, "ERR", color.New(color.FgHiRed).Sprint},
	{LevelWarn, "WRN", color.New(color.FgHiYellow).Sprint},
	{LevelInfo, "INF", color.New(color.FgHiGreen).Sprint},
	{LevelDebug, "DBG", color.New(color.FgHiBlue).Sprint},
}

func printf(level int, w io.Writer, format string, a ...any) {
	spec := LevelSpecs[level]
	fmt.Fprintf(w, "%s %s\n", spec.Colorizer(spec.Name), fmt.Sprintf(format, a...))
}

// Errorf prints an error line to stderr.
func Errorf(format string, a ...any) {
	printf(LevelError, os.Stderr, format, a...)
}

// Warnf prints a warning line to stderr.
func Warnf(format string, a ...any) {
	printf(LevelWarn, os.Stderr, format, a...)
}

// Infof prints an informational line to stdout.
func Infof(format string, a ...any) {
	printf(LevelInfo, os.Stdout, format, a...)
}

// Debugf prints a debug line to stdout when Verbose is set.
func Debugf(format string, a ...any) {
	if !Verbose {
		return
	}
	printf(LevelDebug, os.Stdout, format, a...)
}

// dumper is configured for stable output across runs so demos stay
// comparable.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump pretty-prints the given values when Verbose is set.
func Dump(a ...any) {
	if !Verbose {
		return
	}
	printf(LevelDebug, os.Stdout, "%s", strings.TrimRight(dumper.Sdump(a...), "\n"))
}

// Block returns a two-cell terminal sample painted with c, or plain
// spaces when color output is disabled.
func Block(c graphics.Color) string {
	if color.NoColor {
		return "  "
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R(), c.G(), c.B())
}
