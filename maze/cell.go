package maze

// Cell represents a single cell in a maze grid. Each side carries its own
// wall flag; a flag set to true forbids leaving the cell across that side.
type Cell struct {
	TopWall    bool // TopWall indicates whether there is a wall on the top side of the cell.
	BottomWall bool // BottomWall indicates whether there is a wall on the bottom side of the cell.
	LeftWall   bool // LeftWall indicates whether there is a wall on the left side of the cell.
	RightWall  bool // RightWall indicates whether there is a wall on the right side of the cell.
}

// HasWall returns true if the cell has a wall on the side the direction
// points at.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case Up:
		return c.TopWall
	case Down:
		return c.BottomWall
	case Left:
		return c.LeftWall
	case Right:
		return c.RightWall
	default:
		return true
	}
}

// SetWall sets the presence of a wall on the side the direction points at.
func (c *Cell) SetWall(d Direction, hasWall bool) {
	switch d {
	case Up:
		c.TopWall = hasWall
	case Down:
		c.BottomWall = hasWall
	case Left:
		c.LeftWall = hasWall
	case Right:
		c.RightWall = hasWall
	}
}

// Point represents the position of a cell in the maze grid. X is the column
// index and Y is the row index, with Y growing downward.
type Point struct {
	X int `json:"x" bson:"x"` // X is the column index of the cell.
	Y int `json:"y" bson:"y"` // Y is the row index of the cell.
}

// Step returns the point one move away in the given direction.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}
