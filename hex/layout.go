package hex

// Unit hex metrics for flat-top orientation, matching the vertical N/S
// direction pair: a hex of size 1 spans Width horizontally and Height
// vertically. Nothing in this package depends on them; they exist for
// renderers mapping cells to 2D positions.
const (
	Width  = 1.0
	Height = 0.8660254037844386 // sqrt(3)/2
)

// Pixel maps a cell to its 2D drawing position for hexes of the given
// size. Columns advance right by 3/4 of a hex width; screen y grows
// southward, so N neighbors sit one Height above.
func (c Cell) Pixel(size float64) (px, py float64) {
	px = 0.75 * Width * size * float64(c.x)
	py = Height * size * (float64(c.z) + float64(c.x)/2)
	return
}
