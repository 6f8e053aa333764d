package reversi

// Direction is a unit step on the board. X and Y are each -1, 0 or 1, never both 0.
type Direction struct {
	DX int
	DY int
}

// directions is the scan order. Flip lists are built in this order, so it must not change.
var directions = [8]Direction{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// Directions returns the eight scan directions in their fixed order.
func Directions() [8]Direction {
	return directions
}
