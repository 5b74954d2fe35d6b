package texdecode

import (
	"sync"
	"sync/atomic"
)

// decodeCompressed decodes a single block-compressed payload into an RGBA8
// image. When opts.IsParallel is set and there are at least 32 blocks, the
// block range is split into opts.taskCount() contiguous chunks, one per
// goroutine. Each worker polls ctx before every block and stops once it is
// cancelled; the cancelled flag records that a worker saw this, so the call
// returns KindCancelled rather than a partial image.
func decodeCompressed(data []byte, width, height int, info formatInfo, opts DecoderOptions, ctx *OperationContext) (*DecodedImage, error) {
	blocksX, blocksY, total := BlockCount(width, height)
	if len(data) != total*info.blockBytes {
		return nil, newError(KindLengthMismatch, "encoded buffer length does not match block count")
	}

	if ctx.Cancelled() {
		return nil, newError(KindCancelled, "decode cancelled")
	}

	img := newDecodedImage(width, height)
	blockAt := func(idx int) RawBlock4x4 {
		off := idx * info.blockBytes
		return info.decodeBlock(data[off:off+info.blockBytes], opts)
	}

	if !opts.IsParallel || total < 32 {
		assembleBlocks(img, blocksX, blocksY, blockAt)
		ctx.advance(total)
		return img, nil
	}

	procs := opts.taskCount()
	if procs > total {
		procs = total
	}
	if procs < 1 {
		procs = 1
	}

	chunk := (total + procs - 1) / procs

	var cancelled atomic.Bool
	var wg sync.WaitGroup
	wg.Add(procs)
	for w := 0; w < procs; w++ {
		start, end := w*chunk, (w+1)*chunk
		if end > total {
			end = total
		}
		go func() {
			defer wg.Done()
			for idx := start; idx < end; idx++ {
				if ctx.Cancelled() {
					cancelled.Store(true)
					return
				}
				bx, by := idx%blocksX, idx/blocksX
				b := blockAt(idx)
				ox, oy := bx*4, by*4
				maxX, maxY := 4, 4
				if ox+4 > img.Width {
					maxX = img.Width - ox
				}
				if oy+4 > img.Height {
					maxY = img.Height - oy
				}
				for y := 0; y < maxY; y++ {
					for x := 0; x < maxX; x++ {
						img.set(ox+x, oy+y, b[y*4+x])
					}
				}
				ctx.advance(1)
			}
		}()
	}
	wg.Wait()

	if cancelled.Load() {
		return nil, newError(KindCancelled, "decode cancelled")
	}
	return img, nil
}

// decodeRaw decodes an uncompressed payload row by row, per spec 4.2.8.
func decodeRaw(data []byte, width, height int, info formatInfo, opts DecoderOptions, ctx *OperationContext) (*DecodedImage, error) {
	rowBytes := width * info.bytesPerPel
	if len(data) != rowBytes*height {
		return nil, newError(KindLengthMismatch, "raw buffer length does not match width*height*bytesPerPixel")
	}

	img := newDecodedImage(width, height)
	rowOut := make([]ColorRgba32, width)
	for y := 0; y < height; y++ {
		if ctx.Cancelled() {
			return nil, newError(KindCancelled, "decode cancelled")
		}
		row := data[y*rowBytes : (y+1)*rowBytes]
		info.decodeRawRow(row, rowOut, opts)
		for x := 0; x < width; x++ {
			img.set(x, y, rowOut[x])
		}
		ctx.advance(1)
	}
	return img, nil
}
