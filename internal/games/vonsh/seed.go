package vonsh

import (
	"math/rand"

	"github.com/vovakirdan/vonsh/internal/board"
	"github.com/vovakirdan/vonsh/internal/core"
)

// Sprite and skin counts.
const (
	FoodSprites = 6
	WallSprites = 4
	Characters  = 24
	// GroundTiles is the number of ground patterns renderers pick from.
	GroundTiles = 8
)

// Seeder places items on random empty fields. All game randomness goes
// through one Seeder so a fixed seed replays a game exactly.
type Seeder struct {
	rng *rand.Rand
}

// NewSeeder returns a Seeder driven by a deterministic source.
func NewSeeder(seed int64) *Seeder {
	return &Seeder{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform value in [0, n).
func (s *Seeder) Intn(n int) int {
	return s.rng.Intn(n)
}

// Character returns a random character skin.
func (s *Seeder) Character() int {
	return s.rng.Intn(Characters)
}

// Seed puts an item of type t on a random empty field and returns it.
//
// Fields are sampled uniformly, at most Area times. If sampling keeps
// hitting occupied fields the board is scanned from a random offset, so
// false is returned only when no empty field exists.
func (s *Seeder) Seed(b *board.Board, t board.FieldType) (core.Point, bool) {
	for attempts := 0; attempts < b.Area(); attempts++ {
		p := core.Pt(s.rng.Intn(b.Width()), s.rng.Intn(b.Height()))
		if b.Get(p).IsEmpty() {
			b.Place(p, t, s.param(t))
			return p, true
		}
	}

	start := s.rng.Intn(b.Area())
	for i := 0; i < b.Area(); i++ {
		idx := (start + i) % b.Area()
		p := core.Pt(idx%b.Width(), idx/b.Width())
		if b.Get(p).IsEmpty() {
			b.Place(p, t, s.param(t))
			return p, true
		}
	}
	return core.Point{}, false
}

func (s *Seeder) param(t board.FieldType) int {
	switch t {
	case board.Food:
		return s.rng.Intn(FoodSprites)
	case board.Wall:
		return s.rng.Intn(WallSprites)
	case board.Snake:
		return s.rng.Intn(Characters)
	}
	return 0
}
