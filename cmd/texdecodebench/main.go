package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/texdecode/texdecode/texdecode"
)

func main() {
	fs := flag.NewFlagSet("texdecodebench", flag.ExitOnError)
	var (
		inPath     string
		iters      int
		parallel   bool
		cpuprofile string
	)
	fs.StringVar(&inPath, "in", "", "input KTX/KTX2/DDS file")
	fs.IntVar(&iters, "iters", 200, "iterations")
	fs.BoolVar(&parallel, "parallel", true, "decode blocks across goroutines")
	fs.StringVar(&cpuprofile, "cpuprofile", "", "optional CPU profile output path")
	_ = fs.Parse(os.Args[1:])

	if inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: texdecodebench -in <file.ktx|.ktx2|.dds> [-iters N] [-parallel]")
		os.Exit(2)
	}
	if iters <= 0 {
		fmt.Fprintln(os.Stderr, "iters must be > 0")
		os.Exit(2)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := texdecode.DefaultDecoderOptions()
	opts.IsParallel = parallel

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

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	var checksum uint64
	for i := 0; i < iters; i++ {
		images, err := texdecode.DecodeAllMipmaps(nil, format, mips, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, img := range images {
			for _, b := range img.Pix {
				checksum += uint64(b)
			}
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("format=%s mips=%d iters=%d total=%s per_iter=%s checksum=%d\n",
		format, len(mips), iters, elapsed, elapsed/time.Duration(iters), checksum)
}
