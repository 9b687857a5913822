package render

// FitScale returns the largest whole number of pixels per cell that fits a
// grid×grid board inside an outW×outH surface. It never returns less than 1.
// Resizing only changes this scale; the logical grid is fixed.
func FitScale(outW, outH, grid int) int {
	if grid <= 0 {
		return 1
	}
	side := outW
	if outH < side {
		side = outH
	}
	scale := side / grid
	if scale < 1 {
		return 1
	}
	return scale
}

// FitBoard returns the board edge in pixels for a surface, trimmed to a
// multiple of grid, and the matching tile size. maxSide caps the edge when
// positive.
func FitBoard(outW, outH, maxSide, grid int) (side, tile int) {
	if maxSide > 0 {
		outW = min(outW, maxSide)
		outH = min(outH, maxSide)
	}
	tile = FitScale(outW, outH, grid)
	return tile * grid, tile
}
