// Collist shows lines of tab-separated text as a list of aligned columns
// in a proportional font. Button 1 toggles the selection of a row, the
// scroll wheel scrolls and q or Delete quits. With -o the list is rendered
// to a PNG file instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rjkroege/collist/column"
	"github.com/rjkroege/collist/config"
	"github.com/rjkroege/collist/draw"
	"github.com/rjkroege/collist/listbox"
	"github.com/rjkroege/collist/raster"
)

var configflag = flag.String("c", "", "TOML list description")
var fontflag = flag.String("f", "", "Font")
var tabsflag = flag.String("t", "", "Tab stops (comma separated 1-based columns)")
var widthflag = flag.String("w", "", "Cell width (average or maximum)")
var maxcharsflag = flag.Int("n", 0, "Maximum characters in a row")
var winsize = flag.String("W", "", "Window Size (WidthxHeight)")
var outflag = flag.String("o", "", "Render the list to this PNG file")
var selectflag = flag.String("s", "", "Rows to select (comma separated)")
var debug = flag.Bool("d", false, "set for verbose debugging")

func main() {
	flag.Parse()
	setuplog(*debug)

	c, err := loadconfig()
	if err != nil {
		fatalf("%v", err)
	}
	rows := c.Items
	if len(rows) == 0 {
		rows, err = readrows(flag.Args())
		if err != nil {
			fatalf("reading rows: %v", err)
		}
	}

	if *outflag != "" {
		if err := headless(c, rows, *outflag); err != nil {
			fatalf("%v", err)
		}
		return
	}
	draw.Main(func(dev *draw.Device) {
		if err := interactive(dev, c, rows); err != nil {
			fatalf("%v", err)
		}
	})
}

// setuplog discards log output unless debug is set.
func setuplog(debug bool) {
	log.SetPrefix("collist: ")
	log.SetFlags(0)
	if debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}
}

// fatalf reports a fatal error on stderr even when logging is discarded.
func fatalf(format string, args ...interface{}) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}

// loadconfig merges the config file, the environment and the flags.
func loadconfig() (config.Config, error) {
	c := config.Default()
	if *configflag != "" {
		var err error
		if c, err = config.Load(*configflag); err != nil {
			return c, err
		}
	}
	if err := c.ApplyEnv(os.Getenv); err != nil {
		return c, err
	}

	if *tabsflag != "" {
		ts, err := config.ParseTabStops(*tabsflag)
		if err != nil {
			return c, fmt.Errorf("-t: %w", err)
		}
		c.TabStops = ts
	}
	if *widthflag != "" {
		c.Width = *widthflag
	}
	if *maxcharsflag > 0 {
		c.MaxChars = *maxcharsflag
	}
	if *winsize != "" {
		c.WinSize = *winsize
	}
	if *fontflag != "" {
		c.Font = *fontflag
	}
	if *selectflag != "" {
		ix, err := config.ParseIndices(*selectflag)
		if err != nil {
			return c, fmt.Errorf("-s: %w", err)
		}
		c.Selected = ix
	}
	return c, c.Validate()
}

// readrows returns the lines of the named files, or of stdin if there are
// none.
func readrows(files []string) ([]string, error) {
	if len(files) == 0 {
		return scanrows(os.Stdin)
	}
	var rows []string
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		r, err := scanrows(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		rows = append(rows, r...)
	}
	return rows, nil
}

func scanrows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	return rows, sc.Err()
}

// parsewinsize parses WidthxHeight.
func parsewinsize(s string) (image.Rectangle, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return image.Rectangle{}, fmt.Errorf("bad window size %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("bad window width %q", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("bad window height %q", hs)
	}
	return image.Rect(0, 0, w, h), nil
}

// makelist builds the list for c on display in r.
func makelist(display draw.Display, r image.Rectangle, c config.Config, rows []string) (*listbox.List, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	layout, err := column.New(opts...)
	if err != nil {
		return nil, err
	}
	font, err := display.OpenFont(c.Font)
	if err != nil {
		return nil, fmt.Errorf("can't open font %q: %w", c.Font, err)
	}
	l, err := listbox.New(display, r, font, layout, listbox.OptDebug(*debug))
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		l.Append(row)
	}
	return l, nil
}

// selectrows selects the configured rows before the first repaint.
func selectrows(l *listbox.List, ix []int) {
	for _, i := range ix {
		if i >= l.Len() {
			continue
		}
		if err := l.Select(i, true); err != nil {
			log.Printf("selecting row %d: %v", i, err)
		}
	}
}

// headless renders the list to a PNG file at path.
func headless(c config.Config, rows []string, path string) error {
	if c.Font == "" {
		c.Font = raster.DefaultFont
	}

	var r image.Rectangle
	if c.WinSize != "" {
		var err error
		if r, err = parsewinsize(c.WinSize); err != nil {
			return err
		}
	} else {
		sizer := raster.NewDisplay(image.Rect(0, 0, 1, 1))
		l, err := makelist(sizer, sizer.ScreenImage().R(), c, rows)
		if err != nil {
			return err
		}
		r = image.Rectangle{Max: l.Size()}
		if r.Dy() == 0 {
			r.Max.Y = l.Metrics().RowHeight()
		}
	}

	display := raster.NewDisplay(r)
	l, err := makelist(display, r, c, rows)
	if err != nil {
		return err
	}
	selectrows(l, c.Selected)
	if err := l.Redraw(); err != nil {
		log.Printf("%v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := display.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// interactive shows the list in a window until q or Delete is typed.
func interactive(dev *draw.Device, c config.Config, rows []string) error {
	if c.Font == "" {
		c.Font = defaultFont
	}
	if c.WinSize == "" {
		c.WinSize = "640x480"
	}
	display, err := dev.NewDisplay(nil, c.Font, "collist", c.WinSize)
	if err != nil {
		return fmt.Errorf("can't open display: %w", err)
	}
	l, err := makelist(display, display.ScreenImage().R(), c, rows)
	if err != nil {
		return err
	}
	selectrows(l, c.Selected)
	if err := l.Redraw(); err != nil {
		log.Printf("%v", err)
	}

	mousectl := display.InitMouse()
	keyboardctl := display.InitKeyboard()
	down := false
	for {
		select {
		case m := <-mousectl.C:
			switch {
			case m.Buttons&1 != 0 && !down:
				if i := l.RowAt(m.Point); i >= 0 {
					if err := l.Toggle(i); err != nil {
						log.Printf("toggling row %d: %v", i, err)
					}
				}
			case m.Buttons&8 != 0:
				if err := l.SetOrigin(l.Origin() - 1); err != nil {
					log.Printf("scrolling: %v", err)
				}
			case m.Buttons&16 != 0:
				if err := l.SetOrigin(l.Origin() + 1); err != nil {
					log.Printf("scrolling: %v", err)
				}
			}
			down = m.Buttons&1 != 0
		case <-mousectl.Resize:
			if err := display.Attach(draw.Refnone); err != nil {
				return fmt.Errorf("failed to attach to window: %w", err)
			}
			if err := l.Resize(display.ScreenImage().R()); err != nil {
				log.Printf("%v", err)
			}
		case r := <-keyboardctl.C:
			if r == 'q' || r == 0x7F {
				return nil
			}
		}
		if err := display.Flush(); err != nil {
			return err
		}
	}
}
