package gridgraph

// WrapRisk returns risk level v raised by inc, wrapping from MaxRisk back to MinRisk.
// The result is always in [MinRisk, MaxRisk] for v in that range and inc ≥ 0.
func WrapRisk(v, inc int) int {
	return (v-MinRisk+inc)%(MaxRisk-MinRisk+1) + MinRisk
}

// Expand tiles the grid tiles×tiles times into a new, larger GridGraph.
// The replica at tile offset (tx,ty) holds every base value raised by tx+ty:
//
//	full[x + W·tx, y + H·ty] = WrapRisk(base[x, y], tx+ty)
//
// Tile (0,0) is the base grid unchanged. Every cell of the
// (tiles·W)×(tiles·H) result is written exactly once. The receiver is not modified.
//
// Behavior:
//  1. Validate tiles ≥ 1.
//  2. For each output row, pick the source row and the vertical tile offset ty.
//  3. Emit the W-cell source row once per horizontal tile tx, raised by tx+ty.
//
// Complexity: O(tiles²·W·H) time and memory.
func (gg *GridGraph) Expand(tiles int) (*GridGraph, error) {
	if tiles < 1 {
		return nil, ErrBadTileCount
	}
	w, h := gg.Width*tiles, gg.Height*tiles
	weights := make([]int, 0, w*h)
	for ty := 0; ty < tiles; ty++ {
		for y := 0; y < gg.Height; y++ {
			src := gg.weights[y*gg.Width : (y+1)*gg.Width]
			for tx := 0; tx < tiles; tx++ {
				for _, v := range src {
					weights = append(weights, WrapRisk(v, tx+ty))
				}
			}
		}
	}

	return &GridGraph{Width: w, Height: h, weights: weights}, nil
}
