// Package render converts radar imagery to terminal text. The TUI
// repaints its whole viewport every frame, which rules out terminal
// graphics protocols; Unicode half-blocks with 24-bit color work in
// any truecolor terminal and survive repaints.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// HalfBlocks renders img into at most cols x rows terminal cells. Each
// cell is an upper half-block whose foreground carries the top pixel
// and background the bottom pixel, so one text row holds two pixel
// rows. The image is fitted to the cell budget with Lanczos resampling
// before conversion. Empty budgets return "".
func HalfBlocks(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	resized := imaging.Fit(img, cols, rows*2, imaging.Lanczos)
	bounds := resized.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			topR, topG, topB := rgb(resized.At(bounds.Min.X+x, bounds.Min.Y+y))

			var botR, botG, botB uint8
			if y+1 < h {
				botR, botG, botB = rgb(resized.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀\033[0m",
				topR, topG, topB, botR, botG, botB)
		}
	}

	return b.String()
}

// rgb converts a color to 8-bit RGB components.
func rgb(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}
