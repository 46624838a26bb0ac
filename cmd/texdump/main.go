package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/samuelyuan/go-tabletop/imagefile"
	"github.com/samuelyuan/go-tabletop/logging"
	"go.uber.org/zap"
)

var previewSize int

func main() {
	// format: ./texdump [-size N] inputFilename outputFilename
	flag.IntVar(&previewSize, "size", 256, "Largest side of the preview in pixels")
	flag.Parse()

	logger := logging.Root()
	defer logger.Sync()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-size N] <texture> <output.png>\n", os.Args[0])
		os.Exit(2)
	}
	inputFilename, outputFilename := flag.Arg(0), flag.Arg(1)

	img, err := imagefile.Load(inputFilename)
	if err != nil {
		logger.Fatal("Error loading texture", zap.Error(err))
	}

	layout, err := img.Layout()
	if err != nil {
		logger.Fatal("Texture cannot be uploaded", zap.String("path", inputFilename), zap.Error(err))
	}
	fmt.Printf("%s: %dx%d %s\n", inputFilename, img.Width, img.Height, layout)

	// Dump the texture the way the GPU receives it
	img.FlipVertical()
	preview := Preview(img, previewSize)

	imageOutputFile, err := os.Create(outputFilename)
	if err != nil {
		logger.Fatal("Error creating output", zap.Error(err))
	}
	defer imageOutputFile.Close()
	if err := png.Encode(imageOutputFile, preview); err != nil {
		logger.Fatal("Error writing preview", zap.Error(err))
	}
	logger.Info("Wrote preview", zap.String("path", outputFilename), zap.Int("width", preview.Bounds().Dx()), zap.Int("height", preview.Bounds().Dy()))
}
