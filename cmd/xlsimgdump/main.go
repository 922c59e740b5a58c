// Command xlsimgdump extracts PNG/JPEG images embedded in a BIFF8 (.xls)
// workbook and writes each one to its own file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/biffraster/xls2img"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xlsimgdump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var outDir string
	fs.StringVar(&outDir, "o", ".", "directory to write extracted images into")
	fs.StringVar(&outDir, "outdir", ".", "directory to write extracted images into")
	verbose := fs.Bool("v", false, "print one line per extracted image")

	fs.Usage = func() {
		io.WriteString(stderr, usage)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return 2
	}
	inputPath := rest[0]

	content, err := readInput(inputPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "xlsimgdump: %v\n", err)
		return 1
	}

	images, err := xls2img.Extract(content, nil)
	if err != nil {
		fmt.Fprintf(stderr, "xlsimgdump: %s: %v\n", inputPath, err)
		return int(-xls2img.ErrorCode(err))
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(stderr, "xlsimgdump: %v\n", err)
		return 1
	}

	base := baseName(inputPath)
	for i, img := range images {
		name := fmt.Sprintf("%s_image_%d%s", base, i+1, extensionFor(img.Format))
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, img.Data, 0o644); err != nil {
			fmt.Fprintf(stderr, "xlsimgdump: %v\n", err)
			return 1
		}
		if *verbose {
			fmt.Fprintf(stdout, "%s: %s, %d bytes\n", path, img.Format, img.Size)
		}
	}
	fmt.Fprintf(stdout, "extracted %d image(s) from %s\n", len(images), inputPath)
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func extensionFor(f xls2img.Format) string {
	switch f {
	case xls2img.FormatPNG:
		return ".png"
	case xls2img.FormatJPEG:
		return ".jpg"
	default:
		return ".bin"
	}
}

func baseName(path string) string {
	if path == "-" {
		return "workbook"
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)]
}

const usage = `Usage:

  xlsimgdump [-o OUTDIR] [-v] xlsfile

positional arguments:

  xlsfile    BIFF8 .xls file path, use '-' to read from STDIN

optional arguments:

  -o, --outdir OUTDIR   directory to write extracted images into (default ".")
  -v                     print one line per extracted image
`
