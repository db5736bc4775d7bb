// Package testimage builds tiny image.Image fixtures from ASCII art, for
// tests that would otherwise need to construct image.RGBA pixel-by-pixel.
package testimage

import (
	"image"
	"image/color"
	"strings"

	"github.com/wirelogic/wired-logic/raster"
)

// FromASCII renders rows into an image.RGBA. '.' is Void; a digit '0'-'6'
// is that wire charge level; any other non-space rune is wire material at
// charge 0. A raw string literal's leading/trailing blank lines and common
// leading indentation are stripped automatically, so callers can write
// indented multi-line art directly.
func FromASCII(art string) *image.RGBA {
	rows := dedent(trimBlankEdges(strings.Split(art, "\n")))

	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x := 0; x < w; x++ {
			var c byte = '.'
			if x < len(row) {
				c = row[x]
			}
			img.Set(x, y, colorFor(c))
		}
	}
	return img
}

func colorFor(c byte) color.Color {
	switch {
	case c == '.' || c == ' ':
		return raster.Void
	case c >= '0' && c <= '6':
		return raster.Charge[c-'0']
	default:
		return raster.Charge[0]
	}
}

// trimBlankEdges drops leading and trailing whitespace-only lines.
func trimBlankEdges(rows []string) []string {
	start := 0
	for start < len(rows) && strings.TrimSpace(rows[start]) == "" {
		start++
	}
	end := len(rows)
	for end > start && strings.TrimSpace(rows[end-1]) == "" {
		end--
	}
	return rows[start:end]
}

// dedent removes the common leading tab/space margin across all rows.
func dedent(rows []string) []string {
	margin := -1
	for _, r := range rows {
		if strings.TrimSpace(r) == "" {
			continue
		}
		n := len(r) - len(strings.TrimLeft(r, " \t"))
		if margin == -1 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return rows
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		if len(r) >= margin {
			out[i] = r[margin:]
		} else {
			out[i] = ""
		}
	}
	return out
}
