package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ajratnam/image-to-ascii/internal/ascii"
	"github.com/ajratnam/image-to-ascii/internal/imaging"
)

func main() {
	var (
		width      = flag.Int("width", 0, "target width in character cells (requires -height)")
		height     = flag.Int("height", 0, "target height in character cells (requires -width)")
		scale      = flag.Float64("scale", 0, "relative scale factor applied to the target dimensions (default 1.0)")
		noFix      = flag.Bool("no-fix", false, "disable terminal aspect-ratio correction")
		brightness = flag.Float64("brightness", 1.0, "brightness factor (1.0 = unchanged)")
		sharpness  = flag.Float64("sharpness", 1.0, "sharpness factor (1.0 = unchanged)")
		charset    = flag.String("charset", "", `characters ordered emptiest to densest (default " .:-=+*#%@")`)
		sortChars  = flag.Bool("sort-charset", false, "reorder the charset by rendered glyph coverage")
		colorize   = flag.Bool("color", false, "emit ANSI truecolor escapes")
		render     = flag.Bool("render", false, "treat the input as ASCII art text and rasterize it (requires -out)")
		out        = flag.String("out", "", "render the ASCII art to an image at this path instead of printing text")
		bg         = flag.String("bg", "#000000", "background color of rendered images")
		fg         = flag.String("fg", "#ffffff", "color of uncolored cells in rendered images")
		cellW      = flag.Int("cell-width", 7, "pixel width of one rendered character cell")
		cellH      = flag.Int("cell-height", 13, "pixel height of one rendered character cell")
	)
	flag.Usage = usage
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	log.SetPrefix("img2ascii: ")

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	renderOpts, err := renderOptions(*cellW, *cellH, *bg, *fg)
	if err != nil {
		log.Fatal(err)
	}

	// Rasterize an existing piece of ASCII art.
	if *render {
		if *out == "" {
			log.Fatal("-render requires -out")
		}
		text, err := os.ReadFile(input)
		if err != nil {
			log.Fatalf("read %s: %v", input, err)
		}
		img, err := ascii.ASCIIToImage(string(text), renderOpts)
		if err != nil {
			log.Fatal(err)
		}
		if err := imaging.Save(img, *out); err != nil {
			log.Fatal(err)
		}
		return
	}

	opts := ascii.DefaultOptions()
	if *width != 0 || *height != 0 {
		if *width <= 0 || *height <= 0 {
			log.Fatalf("-width and -height must both be positive, got %dx%d", *width, *height)
		}
		opts.Size = &ascii.Dimensions{Width: *width, Height: *height}
	}
	opts.Scale = *scale
	opts.FixScaling = !*noFix
	opts.Brightness = *brightness
	opts.Sharpness = *sharpness
	if *charset != "" {
		opts.Charset = ascii.Charset(*charset)
	}
	opts.SortCharset = *sortChars
	opts.Colorful = *colorize

	text, err := ascii.FileToASCII(imaging.NewImageCache(), input, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Println(text)
		return
	}

	img, err := ascii.ASCIIToImage(text, renderOpts)
	if err != nil {
		log.Fatal(err)
	}
	if err := imaging.Save(img, *out); err != nil {
		log.Fatal(err)
	}
}

func renderOptions(cellW, cellH int, bg, fg string) (ascii.RenderOptions, error) {
	opts := ascii.DefaultRenderOptions()
	opts.Cell = ascii.CellSize{Width: cellW, Height: cellH}

	bgc, err := colorful.Hex(bg)
	if err != nil {
		return opts, fmt.Errorf("invalid -bg color %q: %v", bg, err)
	}
	fgc, err := colorful.Hex(fg)
	if err != nil {
		return opts, fmt.Errorf("invalid -fg color %q: %v", fg, err)
	}

	r, g, b := bgc.RGB255()
	opts.Background = color.NRGBA{R: r, G: g, B: b, A: 255}
	r, g, b = fgc.RGB255()
	opts.Foreground = color.NRGBA{R: r, G: g, B: b, A: 255}
	return opts, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: img2ascii [options] <image file or URL>")
	fmt.Fprintln(os.Stderr, "       img2ascii -render -out <image file> [options] <text file>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Converts an image (local file or http(s) URL) to ASCII art on stdout.")
	fmt.Fprintln(os.Stderr, "With -out, the art is rasterized back into an image file instead.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
}
