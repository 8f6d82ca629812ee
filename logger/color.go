package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// prefixWidth is the column count every prefix is padded to.
const prefixWidth = 6

var prefixStyles = map[Level]struct {
	text  string
	color color.Attribute
}{
	ErrorLevel: {"error:", color.FgRed},
	WarnLevel:  {"warn:", color.FgYellow},
	InfoLevel:  {"info:", color.FgGreen},
	DebugLevel: {"debug:", color.FgBlue},
	TraceLevel: {"trace:", color.FgMagenta},
}

// prefixText returns the uncolored prefix for a level, e.g. "warn:".
func prefixText(level Level) string {
	return prefixStyles[level].text
}

// renderPrefix returns the prefix for level padded to prefixWidth columns,
// wrapped in bold color escapes when colored is set. The padding sits inside
// the escapes so the visible layout is the same either way.
func renderPrefix(level Level, colored bool) string {
	style, ok := prefixStyles[level]
	if !ok {
		return fmt.Sprintf("%-*s", prefixWidth, "")
	}
	c := color.New(style.color, color.Bold)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprintf("%-*s", prefixWidth, style.text)
}

// consoleWriter prepares w for console output. Files are wrapped with
// go-colorable so ANSI escapes work on Windows consoles, and colored reports
// whether escapes should be written at all. Any other writer is used as-is,
// without color.
func consoleWriter(w io.Writer) (out io.Writer, colored bool) {
	f, ok := w.(*os.File)
	if !ok {
		return w, false
	}
	return colorable.NewColorable(f), isColorTerminal(f) && !colorDisabledByEnv()
}

func isColorTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorDisabledByEnv follows the NO_COLOR convention and TERM=dumb.
func colorDisabledByEnv() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"
}
