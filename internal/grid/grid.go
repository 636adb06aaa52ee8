// Package grid fills cells of tile maps.
package grid

type Cell struct {
	X, Y, Z int
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

type Tilemap[T any] interface {
	SetTile(pos Cell, tile T)
}

// BoxFill sets tile on every cell of the inclusive rectangle between start and end.
// Either corner may come first. Z is taken from start.
func BoxFill[T any](m Tilemap[T], tile T, start, end Cell) {
	xDir, yDir := 1, 1
	if start.X > end.X {
		xDir = -1
	}
	if start.Y > end.Y {
		yDir = -1
	}

	xCols := 1 + abs(start.X-end.X)
	yCols := 1 + abs(start.Y-end.Y)

	for x := 0; x < xCols; x++ {
		for y := 0; y < yCols; y++ {
			m.SetTile(start.Add(Cell{X: x * xDir, Y: y * yDir}), tile)
		}
	}
}

func BoxFillXY[T any](m Tilemap[T], tile T, startX, startY, endX, endY int) {
	BoxFill(m, tile, Cell{X: startX, Y: startY}, Cell{X: endX, Y: endY})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
