package grid

// Map is a sparse in-memory tile map. Not safe for concurrent use.
type Map[T any] struct {
	tiles map[Cell]T
}

func NewMap[T any]() *Map[T] {
	return &Map[T]{tiles: make(map[Cell]T)}
}

func (m *Map[T]) SetTile(pos Cell, tile T) {
	m.tiles[pos] = tile
}

func (m *Map[T]) Tile(pos Cell) (T, bool) {
	tile, ok := m.tiles[pos]
	return tile, ok
}

func (m *Map[T]) Len() int {
	return len(m.tiles)
}
