// bcnpack encodes an image into a squish-family fixed-rate block format.
package main

import (
	"errors"
	"flag"
	"image"
	"os"

	"github.com/go-squish/squish/squish"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	formatFlag  = flag.String("format", "bc1", "target format: bc1, bc3alpha, bc7twosubset, bc7rotated")
	clusterFlag = flag.Bool("cluster", true, "enable the cluster fitter")
	rangeFlag   = flag.Bool("range", false, "enable the range fitter")
	refineFlag  = flag.Bool("refine", false, "enable iterative refinement")
	srgbFlag    = flag.Bool("srgb", false, "use the sRGB error metric")
)

const usageStr = `bcnpack encodes an image into a squish-family fixed-rate block format.

Usage: bcnpack [flags] [path]

The path to the input image file is optional. If omitted, stdin is read.
Input may be BMP, GIF, JPEG, PNG, TIFF or WEBP.
The packed block stream is written to stdout.

Flags:
  -format=bc1          4-color interpolated blocks, RGB565, 8 bytes
  -format=bc3alpha     8-alpha interpolated blocks, 8 bytes
  -format=bc7twosubset partitioned palette blocks, 2 subsets, 16 bytes
  -format=bc7rotated   single subset, RGBA, channel rotation, 16 bytes
  -cluster / -range    fitter selection (cluster is on by default)
  -refine              cap-8 iterative refinement of the cluster fit
  -srgb                sRGB error metric instead of linear
`

var errBadFormat = errors.New("bcnpack: unrecognized -format value")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	inFile := os.Stdin
	switch flag.NArg() {
	case 0:
		// No-op.
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		inFile = f
	default:
		return errors.New("too many filenames; the maximum is one")
	}

	format, err := resolveFormat(*formatFlag)
	if err != nil {
		return err
	}

	img, _, err := image.Decode(inFile)
	if err != nil {
		return err
	}

	flags := squish.Flags(0)
	if *clusterFlag {
		flags |= squish.FlagClusterFit
	}
	if *rangeFlag {
		flags |= squish.FlagRangeFit
	}
	if *refineFlag {
		flags |= squish.FlagIterativeRefine
	}
	if *srgbFlag {
		flags |= squish.FlagSRGBMetric
	}

	driver := squish.Driver{
		Format: format,
		Metric: squish.Vec4{X: 1, Y: 1, Z: 1, W: 1},
		Flags:  flags,
	}

	out, err := driver.EncodeImage(img)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}

func resolveFormat(name string) (squish.Format, error) {
	switch name {
	case "bc1":
		return squish.FormatBC1, nil
	case "bc3alpha":
		return squish.FormatBC3Alpha, nil
	case "bc7twosubset":
		return squish.FormatBC7TwoSubset, nil
	case "bc7rotated":
		return squish.FormatBC7Rotated, nil
	default:
		return squish.Format{}, errBadFormat
	}
}
