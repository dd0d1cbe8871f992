package model

// Coord is a cell position on the grid
type Coord struct {
	X int
	Y int
}

// neighborOffsets is the Moore neighborhood, scanned row by row
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Add returns the coordinate shifted by d
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// InBounds reports whether c lies inside a width x height grid
func (c Coord) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Wrap maps c onto a width x height torus. Both dimensions must be positive.
func (c Coord) Wrap(width, height int) Coord {
	return Coord{
		X: (c.X%width + width) % width,
		Y: (c.Y%height + height) % height,
	}
}
