package shooter

// Rand is the random source used for spawns. *rand.Rand satisfies it;
// tests substitute a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Spawner creates enemies just above the visible field.
type Spawner struct {
	rng    Rand
	worldW float64
	width  float64
	height float64
	maxVX  float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, p Params) *Spawner {
	return &Spawner{
		rng:    rng,
		worldW: p.WorldW,
		width:  p.EnemyW,
		height: p.EnemyH,
		maxVX:  p.EnemyMaxVX,
	}
}

// SetRand replaces the random source.
func (s *Spawner) SetRand(rng Rand) {
	s.rng = rng
}

// Next returns a new enemy with the given id.
// X is uniform in [0, W-width], VX uniform in [-maxVX, maxVX] and the kind
// uniform over the three kinds. The enemy starts fully above the field.
func (s *Spawner) Next(id uint64) Enemy {
	x := s.rng.Float64() * (s.worldW - s.width)
	vx := s.rng.Float64()*2*s.maxVX - s.maxVX
	kind := Kind(s.rng.Intn(kindCount))

	return Enemy{
		ID:     id,
		X:      x,
		Y:      -s.height,
		VX:     vx,
		Width:  s.width,
		Height: s.height,
		Kind:   kind,
	}
}
