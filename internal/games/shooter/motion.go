package shooter

// MoveBullets advances every bullet up by speed and drops the ones that
// reached the top edge. The input slice is not modified.
func MoveBullets(bullets []Bullet, speed float64) []Bullet {
	moved := make([]Bullet, 0, len(bullets))
	for _, b := range bullets {
		b.Y -= speed
		if b.Y > 0 {
			moved = append(moved, b)
		}
	}
	return moved
}

// MoveEnemies advances every enemy by one tick and drops the ones that left
// through the bottom edge. The input slice is not modified.
//
// An enemy whose next x would leave [0, worldW-width] has its horizontal
// velocity negated once and moves by the reflected velocity instead. There
// is no clamping and no second correction within the same tick.
func MoveEnemies(enemies []Enemy, speed, worldW, worldH float64) []Enemy {
	moved := make([]Enemy, 0, len(enemies))
	for _, e := range enemies {
		x := e.X + e.VX
		if x < 0 || x > worldW-e.Width {
			e.VX = -e.VX
			x = e.X + e.VX
		}
		e.X = x
		e.Y += speed

		if e.Y < worldH {
			moved = append(moved, e)
		}
	}
	return moved
}
