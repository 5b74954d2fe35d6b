package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/texdecode/texdecode/texdecode"
)

func main() {
	var (
		inPath     string
		outPath    string
		optsPath   string
		parallel   bool
		luminance  bool
		bc1Alpha   bool
	)
	flag.StringVar(&inPath, "in", "", "input KTX/KTX2/DDS file")
	flag.StringVar(&outPath, "out", "", "output PNG file for mip 0 (default: <in>.png)")
	flag.StringVar(&optsPath, "opts", "", "optional YAML DecoderOptions file")
	flag.BoolVar(&parallel, "parallel", true, "decode blocks across goroutines")
	flag.BoolVar(&luminance, "luminance", false, "replicate single-channel formats into RGB")
	flag.BoolVar(&bc1Alpha, "dds-bc1-alpha", false, "assume BC1 has alpha when a DDS omits DDPF_ALPHAPIXELS")
	flag.Parse()

	if inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: texdecodecli -in <file.ktx|.ktx2|.dds> [-out out.png] [-opts opts.yaml]")
		os.Exit(2)
	}

	opts := texdecode.DefaultDecoderOptions()
	if optsPath != "" {
		loaded, err := texdecode.LoadDecoderOptionsYAML(optsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts = loaded
	}
	// Flags override the loaded options only when given on the command line.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "parallel":
			opts.IsParallel = parallel
		case "luminance":
			opts.RedAsLuminance = luminance
		case "dds-bc1-alpha":
			opts.DdsBc1ExpectAlpha = bc1Alpha
		}
	})

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var format texdecode.CompressionFormat
	var mips []texdecode.MipDescriptor

	switch strings.ToLower(filepath.Ext(inPath)) {
	case ".dds":
		dds, err := texdecode.ParseDDS(data, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		format, mips = dds.Format, dds.Mips
	case ".ktx", ".ktx2":
		ktx, err := texdecode.ParseKTX(data, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		format, mips = ktx.Format, ktx.Mips
	default:
		fmt.Fprintln(os.Stderr, "unrecognized container extension (want .dds, .ktx, or .ktx2)")
		os.Exit(2)
	}

	ctx := texdecode.NewOperationContext()
	images, err := texdecode.DecodeAllMipmaps(ctx, format, mips, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".png"
	}
	if err := writePNG(outPath, images[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("decoded %s: %s %dx%d, %d mip(s) -> %s\n", inPath, format, images[0].Width, images[0].Height, len(images), outPath)
}

func writePNG(path string, img *texdecode.DecodedImage) error {
	rgba := &image.RGBA{
		Pix:    img.Pix,
		Stride: img.Stride,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, rgba)
}
