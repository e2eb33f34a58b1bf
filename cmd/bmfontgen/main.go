// Command bmfontgen generates character bitmaps and descriptions for
// the thirty engine from TrueType fonts.
//
// It writes two files named "{fontFile}_{height}_{encoding}": a PNG
// texture containing all the glyphs packed tightly, written under
// basedir/textures, and a binary description of each glyph's placement
// and metrics, written under basedir/fonts. Both directories are
// created if they don't already exist and the files are replaced if
// they do.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	bmfont "github.com/Dacada/BitmapFontGenerator"
)

func main() {
	// A .env file in the working directory can provide defaults,
	// notably BMFONT_BASEDIR for the assets directory.
	_ = godotenv.Load()

	defaults := bmfont.DefaultConfig()
	if dir := os.Getenv("BMFONT_BASEDIR"); dir != "" {
		defaults.BaseDir = dir
	}

	var (
		basedir = flag.String("basedir", defaults.BaseDir,
			"path of the assets directory")
		height = flag.Int("height", defaults.Height,
			"pixel height of the generated font; a close approximate value is used")
		encoding = flag.String("encoding", defaults.Encoding,
			"text encoding mapping the character codes 0..255 to characters")
		verbose = flag.Bool("v", false, "enable verbose logging")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if *verbose {
		bmfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	result, err := bmfont.Generate(bmfont.Config{
		FontPath: flag.Arg(0),
		BaseDir:  *basedir,
		Height:   *height,
		Encoding: *encoding,
	})
	if err != nil {
		log.Fatalf("Failed to generate atlas: %v", err)
	}

	log.Printf("Wrote %s and %s (%dx%d)\n",
		result.DescriptionPath, result.TexturePath, result.Dimension, result.Dimension)
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "Usage: bmfontgen [flags] fontfile")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "The font file's name without extension names the generated files.")
	fmt.Fprintln(out)
	flag.PrintDefaults()
}
