// Command demo-frame renders the dashboard frame with canned sample
// data at an arbitrary width, without touching the network or the real
// terminal size. Used for layout work and README screenshots.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	dcolor "gitlab.com/tinyland/lab/wtop/display/color"
	"gitlab.com/tinyland/lab/wtop/display/frame"
	"gitlab.com/tinyland/lab/wtop/display/layout"
)

func main() {
	width := flag.Int("width", 100, "Frame width in columns")
	noColor := flag.Bool("no-color", false, "Disable color output")
	flag.Parse()

	dcolor.Apply(*noColor)

	g, err := layout.NewGeometry(*width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f := frame.New(frame.Config{
		Geometry:        g,
		RefreshInterval: 5 * time.Second,
	})
	out := f.Render(frame.SampleReport(time.Now()))

	fmt.Println(out)
	fmt.Println()
	fmt.Printf("Width: %d columns, %d rows\n", g.Total, strings.Count(out, "\n")+1)
}
