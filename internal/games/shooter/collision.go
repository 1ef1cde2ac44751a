package shooter

// Resolution is the outcome of one collision pass.
type Resolution struct {
	Bullets []Bullet
	Enemies []Enemy
	Killed  int  // Enemies destroyed by bullets this pass
	ShipHit bool // An enemy overlaps the ship; the game is lost
}

// Resolve runs the collision pass on post-motion collections.
//
// Any enemy touching the ship ends the game at once: both collections are
// returned untouched and nothing is scored. Otherwise every bullet is tested
// against every enemy, the hit indices are collected first and both
// collections are filtered afterwards, so an enemy struck by several bullets
// is removed (and scored) once and a bullet crossing several enemies removes
// all of them.
func Resolve(ship Ship, bullets []Bullet, enemies []Enemy) Resolution {
	shipRect := ship.Rect()
	for _, e := range enemies {
		if shipRect.Intersects(e.Rect()) {
			return Resolution{Bullets: bullets, Enemies: enemies, ShipHit: true}
		}
	}

	hitBullets := make([]bool, len(bullets))
	hitEnemies := make([]bool, len(enemies))
	for bi, b := range bullets {
		br := b.Rect()
		for ei, e := range enemies {
			if br.Intersects(e.Rect()) {
				hitBullets[bi] = true
				hitEnemies[ei] = true
			}
		}
	}

	survivingBullets := make([]Bullet, 0, len(bullets))
	for i, b := range bullets {
		if !hitBullets[i] {
			survivingBullets = append(survivingBullets, b)
		}
	}
	survivingEnemies := make([]Enemy, 0, len(enemies))
	for i, e := range enemies {
		if !hitEnemies[i] {
			survivingEnemies = append(survivingEnemies, e)
		}
	}

	return Resolution{
		Bullets: survivingBullets,
		Enemies: survivingEnemies,
		Killed:  len(enemies) - len(survivingEnemies),
	}
}
