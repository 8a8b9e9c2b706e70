package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// framesPerSecond is the update rate the per-kind speeds were tuned for.
// Update scales movement by real elapsed time so the fall rate does not
// depend on how often it is called.
const framesPerSecond = 60

// Engine owns the live entity collection of one round.
// It is not safe for concurrent use.
type Engine struct {
	width, height float64
	params        Params
	rng           *rand.Rand

	entities   *arena
	difficulty Difficulty
	lastSpawn  time.Duration
	spawned    bool // false until the first spawn since construction
	seq        uint64
}

// NewEngine creates an engine for a viewport of the given size in pixels.
// All randomness, including entity ids, is drawn from rng.
func NewEngine(width, height float64, params Params, rng *rand.Rand) *Engine {
	if params.Lanes < 1 {
		params.Lanes = 1
	}
	if params.MaxLive < 0 {
		params.MaxLive = 0
	}
	return &Engine{
		width:      width,
		height:     height,
		params:     params,
		rng:        rng,
		entities:   newArena(params.MaxLive),
		difficulty: params.Difficulty,
	}
}

// Size returns the viewport dimensions.
func (e *Engine) Size() (float64, float64) {
	return e.width, e.height
}

// Difficulty returns the current difficulty parameters.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Len returns the number of live entities, resolved ones included.
func (e *Engine) Len() int {
	return e.entities.len()
}

// Entities returns a snapshot of the live entities, oldest first.
func (e *Engine) Entities() []Entity {
	return e.entities.snapshot()
}

// Entity looks up a live entity by id.
func (e *Engine) Entity(id uuid.UUID) (Entity, bool) {
	ent, ok := e.entities.get(id)
	if !ok {
		return Entity{}, false
	}
	return *ent, true
}

// Spawn runs one spawn attempt at simulated time now. It does nothing until
// the current spawn interval has passed since the previous attempt, or while
// the field is full. Otherwise it creates up to SpawnCount entities and
// returns the last one created.
func (e *Engine) Spawn(now time.Duration) (Entity, bool) {
	if e.spawned && now-e.lastSpawn < e.difficulty.SpawnInterval {
		return Entity{}, false
	}
	if e.entities.len() >= e.params.MaxLive {
		return Entity{}, false
	}

	e.lastSpawn = now
	e.spawned = true

	var last Entity
	created := false
	for range e.difficulty.SpawnCount {
		if e.entities.len() >= e.params.MaxLive {
			break
		}
		last = e.newEntity()
		e.entities.add(last)
		created = true
	}
	return last, created
}

func (e *Engine) newEntity() Entity {
	kind := e.difficulty.Odds.Pick(e.rng.Float64())
	prof := e.params.Profile(kind)

	laneWidth := e.width / float64(e.params.Lanes)
	lane := e.rng.Intn(e.params.Lanes)
	room := math.Max(0, laneWidth-prof.Size)
	x := float64(lane)*laneWidth + e.rng.Float64()*room

	speed := prof.BaseSpeed*e.difficulty.SpeedMultiplier + e.rng.Float64()*e.params.SpeedJitter

	id, err := uuid.NewRandomFromReader(e.rng)
	if err != nil {
		// *rand.Rand never fails to read.
		id = uuid.New()
	}

	e.seq++
	return Entity{
		ID:    id,
		Seq:   e.seq,
		Kind:  kind,
		X:     x,
		Y:     -prof.Size,
		Speed: speed,
		Size:  prof.Size,
	}
}

// Update advances every moving entity by elapsed time and removes entities
// that were resolved or have fallen past the bottom of the viewport.
// Negative elapsed time moves nothing. Returns the number of entities that
// left the viewport without being resolved.
func (e *Engine) Update(elapsed time.Duration) int {
	secs := elapsed.Seconds()
	if secs < 0 {
		secs = 0
	}

	for i := range e.entities.slots {
		ent := &e.entities.slots[i]
		if ent.Resolved || ent.Frozen {
			continue
		}
		ent.Y += ent.Speed * framesPerSecond * secs
	}

	missed := 0
	e.entities.compact(func(ent *Entity) bool {
		if ent.Resolved {
			return true
		}
		if ent.Y > e.height {
			missed++
			return true
		}
		return false
	})
	return missed
}

// ResolveTap marks the oldest unresolved entity whose hit circle contains
// (x, y) as resolved and returns it. The entity stays in the collection until
// the next Update. Taps outside the viewport never hit.
func (e *Engine) ResolveTap(x, y float64) (Entity, bool) {
	if !e.inViewport(x, y) {
		return Entity{}, false
	}

	for i := range e.entities.slots {
		ent := &e.entities.slots[i]
		if ent.Resolved {
			continue
		}
		cx, cy := ent.Center()
		if math.Hypot(cx-x, cy-y) < ent.Radius() {
			ent.Resolved = true
			return *ent, true
		}
	}
	return Entity{}, false
}

func (e *Engine) inViewport(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	return x >= 0 && x <= e.width && y >= 0 && y <= e.height
}

// FreezeAll stops every live entity from moving.
func (e *Engine) FreezeAll() {
	for i := range e.entities.slots {
		e.entities.slots[i].Frozen = true
	}
}

// UnfreezeAll lets every live entity move again.
func (e *Engine) UnfreezeAll() {
	for i := range e.entities.slots {
		e.entities.slots[i].Frozen = false
	}
}

// RampDifficulty makes the round one step harder and speeds up every live
// entity.
func (e *Engine) RampDifficulty() {
	e.difficulty = e.difficulty.Ramp(e.params.Ramp)

	if factor := e.params.Ramp.SpeedFactor; factor > 1 {
		for i := range e.entities.slots {
			e.entities.slots[i].Speed *= factor
		}
	}
}

// Reset removes every entity and restores the starting difficulty.
// The next spawn is due one full interval after now.
func (e *Engine) Reset(now time.Duration) {
	e.entities.clear()
	e.difficulty = e.params.Difficulty
	e.lastSpawn = now
	e.spawned = true
}
