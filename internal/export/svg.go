package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/sortwiz/internal/layout"
	"github.com/san-kum/sortwiz/internal/stepper"
)

var palette = map[layout.Tint]string{
	layout.Gradient0: "#0000ff",
	layout.Gradient1: "#0000e6",
	layout.Gradient2: "#0000cd",
	layout.Accent1:   "#008000",
	layout.Accent2:   "#ff0000",
}

// WriteSVG renders the bars of values on the layout's canvas, accenting the
// indices named by ev.
func WriteSVG(w io.Writer, l *layout.Layout, values stepper.Sequence, ev stepper.StepEvent, title string) error {
	if l == nil {
		return fmt.Errorf("export: nil layout")
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, l.Width, l.Height, l.Width, l.Height))

	if title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="40" font-family="serif" font-size="30" fill="#008000" text-anchor="middle">%s</text>
`, l.Width/2, html.EscapeString(title)))
	}

	sb.WriteString("<g>\n")
	for _, b := range l.Bars(values) {
		if b.H <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, b.X, b.Y, b.W, b.H, palette[layout.TintOf(b.Index, ev)]))
	}
	sb.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
