package hex

// Distance returns the minimum number of adjacency steps between two
// cells. The component sum of a valid cube delta is always even, so the
// halving is exact.
func Distance(a, b Cell) int {
	return (abs(a.x-b.x) + abs(a.y-b.y) + abs(a.z-b.z)) / 2
}

// DistanceTo returns the distance from c to a target given in any
// coordinate form.
func (c Cell) DistanceTo(to Coord) (int, error) {
	t, err := Normalize(to)
	if err != nil {
		return 0, err
	}
	return Distance(c, t), nil
}

// Area returns every cell within r steps of c inclusive, the filled
// disc of radius r. Results are ordered by increasing axial x, then
// increasing axial y within each band; the count is 3r^2+3r+1.
func Area(c Cell, r int) []Cell {
	out := make([]Cell, 0, 3*r*r+3*r+1)
	for x := -r; x <= r; x++ {
		y1 := max(-r, -r-x)
		y2 := min(r, r-x)
		for y := y1; y <= y2; y++ {
			out = append(out, Cell{c.x + x, c.y + y, c.z - x - y})
		}
	}
	return out
}

// ringLegs is the clockwise walk order for Ring: starting from the
// topmost cell (center + N*r), six legs of r steps each close the loop.
var ringLegs = [6]Direction{SE, S, SW, NW, N, NE}

// Ring returns exactly the cells at distance r from c, starting at
// c + N*r and proceeding clockwise. Each cell is appended before
// stepping, so every leg begins where the previous one ended. A radius
// below 1 degenerates to [c]; negative radii intentionally behave the
// same as zero rather than being rejected.
func Ring(c Cell, r int) []Cell {
	if r < 1 {
		return []Cell{c}
	}
	out := make([]Cell, 0, 6*r)
	n := Directions[N]
	cur := Cell{c.x + n.x*r, c.y + n.y*r, c.z + n.z*r}
	for _, leg := range ringLegs {
		for step := 0; step < r; step++ {
			out = append(out, cur)
			cur = cur.Adjacent(leg)
		}
	}
	return out
}

// lineEpsilon nudges the interpolation start off exact lattice edges so
// rounding ties always break the same way. Its components sum to zero,
// keeping the perturbed start on the (real-valued) cube plane.
var lineEpsilon = [3]float64{1e-6, 2e-6, -3e-6}

// LineTo returns the straight unobstructed path from c to the target
// inclusive, length distance+1. Points are linearly interpolated in
// real cube space and snapped to cells with Round. A zero-distance line
// is the single-element path [c].
func (c Cell) LineTo(to Coord) ([]Cell, error) {
	t, err := Normalize(to)
	if err != nil {
		return nil, err
	}
	steps := Distance(c, t)
	if steps == 0 {
		return []Cell{c}, nil
	}
	ax := float64(c.x) + lineEpsilon[0]
	ay := float64(c.y) + lineEpsilon[1]
	az := float64(c.z) + lineEpsilon[2]
	out := make([]Cell, 0, steps+1)
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		out = append(out, Round(
			ax+(float64(t.x)-ax)*f,
			ay+(float64(t.y)-ay)*f,
			az+(float64(t.z)-az)*f,
		))
	}
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
