package core

// Color is the render role of a screen cell. Frontends map roles to
// concrete terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnake
	ColorFood
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorSnake:
		return "snake"
	case ColorFood:
		return "food"
	default:
		return "default"
	}
}
