package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
)

// panel prints lines inside a titled box.
func panel(w io.Writer, c *color.Color, title string, lines ...string) {
	width := utf8.RuneCountInString(title) + 2
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	c.Fprintf(w, "┌─ %s %s┐\n", title, strings.Repeat("─", width-utf8.RuneCountInString(title)-1))
	for _, l := range lines {
		c.Fprint(w, "│ ")
		fmt.Fprint(w, l+strings.Repeat(" ", width-utf8.RuneCountInString(l)))
		c.Fprintln(w, " │")
	}
	c.Fprintf(w, "└%s┘\n", strings.Repeat("─", width+2))
}

func errorf(w io.Writer, format string, a ...interface{}) {
	red.Fprint(w, "Error: ")
	fmt.Fprintf(w, format+"\n", a...)
}

func newBar(w io.Writer, max int, description string, count bool) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionFullWidth(),
	}
	if count {
		opts = append(opts, progressbar.OptionShowCount())
	} else {
		opts = append(opts, progressbar.OptionClearOnFinish())
	}
	return progressbar.NewOptions(max, opts...)
}
