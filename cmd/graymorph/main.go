// graymorph applies a grayscale morphological operation to a PNG or JPEG
// image and writes the result as an 8-bit grayscale PNG.
//
// Usage:
//
//	graymorph -in photo.png -out opened.png -op opening -shape disk -size 3
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graymorph/footprint"
	"github.com/katalvlaran/graymorph/gray"
	"github.com/katalvlaran/graymorph/imgutil"
	"github.com/katalvlaran/graymorph/ndarray"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	inPath := flag.String("in", "", "input image path (PNG or JPEG)")
	outPath := flag.String("out", "", "output PNG path")
	op := flag.String("op", "erosion", "operation: erosion|dilation|opening|closing|white-tophat|black-tophat")
	shape := flag.String("shape", "", "footprint shape: diamond|disk|square|rect|star (empty = radius-1 cross)")
	size := flag.Int("size", 1, "footprint radius (diamond/disk/star) or side (square)")
	rows := flag.Int("rows", 0, "rectangle rows (shape=rect)")
	cols := flag.Int("cols", 0, "rectangle cols (shape=rect)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	logger := initLogger(*debug)
	if *inPath == "" || *outPath == "" {
		return fmt.Errorf("usage: graymorph -in <image> -out <png> [-op <name>] [-shape <name> -size <n>]")
	}

	fp, err := buildFootprint(*shape, *size, *rows, *cols)
	if err != nil {
		return err
	}

	in, err := os.Open(*inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := imgutil.DecodeGray(in)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"image": *inPath,
		"shape": img.Shape(),
		"op":    *op,
	}).Debug("image decoded")

	res, err := apply(*op, img, fp)
	if err != nil {
		return err
	}

	out, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := imgutil.EncodePNG(out, res); err != nil {
		return err
	}
	logger.WithField("output", *outPath).Info("done")

	return nil
}

// apply routes an operation name to the kernel.
func apply(op string, img *ndarray.Array[uint8], fp *footprint.Footprint) (*ndarray.Array[uint8], error) {
	switch op {
	case "erosion":
		return gray.Erosion(img, fp, nil)
	case "dilation":
		return gray.Dilation(img, fp, nil)
	case "opening":
		return gray.Opening(img, fp, nil)
	case "closing":
		return gray.Closing(img, fp, nil)
	case "white-tophat":
		return gray.WhiteTophat(img, fp, nil)
	case "black-tophat":
		return gray.BlackTophat(img, fp, nil)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// buildFootprint constructs the requested structuring element; an empty
// shape name selects the kernel default (nil footprint).
func buildFootprint(shape string, size, rows, cols int) (*footprint.Footprint, error) {
	switch shape {
	case "":
		return nil, nil
	case "diamond":
		return footprint.Diamond(size)
	case "disk":
		return footprint.Disk(size)
	case "square":
		return footprint.Square(size)
	case "star":
		return footprint.Star(size)
	case "rect":
		return footprint.Rectangle(rows, cols)
	default:
		return nil, fmt.Errorf("unknown footprint shape %q", shape)
	}
}

// initLogger configures the process logger.
func initLogger(debug bool) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stdout)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
