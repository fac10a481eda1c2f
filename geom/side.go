package geom

// Side names one of the four edges of a rectangle.
type Side uint8

const (
	Left Side = iota
	Bottom
	Right
	Top
)

// Sides lists all sides in their fixed processing order.
var Sides = [4]Side{Left, Bottom, Right, Top}

func (s Side) Opposite() Side {
	return (s + 2) % 4
}

func (s Side) Valid() bool {
	return s <= Top
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Top:
		return "top"
	}
	return "invalid"
}
