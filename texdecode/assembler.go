package texdecode

// assembleBlocks writes a flat, row-major sequence of decoded 4x4 blocks
// into img, clipping the bottom and right edge blocks when width/height are
// not multiples of 4, per spec section 4.3.
func assembleBlocks(img *DecodedImage, blocksX, blocksY int, block func(idx int) RawBlock4x4) {
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			b := block(by*blocksX + bx)
			ox, oy := bx*4, by*4
			maxX := 4
			if ox+4 > img.Width {
				maxX = img.Width - ox
			}
			maxY := 4
			if oy+4 > img.Height {
				maxY = img.Height - oy
			}
			for y := 0; y < maxY; y++ {
				for x := 0; x < maxX; x++ {
					img.set(ox+x, oy+y, b[y*4+x])
				}
			}
		}
	}
}
