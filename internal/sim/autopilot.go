package sim

import (
	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
	"github.com/annel0/tile-sandbox/internal/world/entity"
)

// stuckTicks: сколько тиков без горизонтального сдвига автопилот терпит перед разворотом
const stuckTicks = 60

// Autopilot: безголовый источник намерений: идёт вперёд, запрыгивает на ступени
// в один тайл, копает то, что мешает пройти, и мостит провалы подобранными блоками.
// У края мира и перед бедроком разворачивается.
type Autopilot struct {
	dir      int
	maxTicks int
	ticks    int
	mining   bool
	lastX    float64
	stuck    int
}

// NewAutopilot создаёт автопилот; maxTicks == 0: без ограничения
func NewAutopilot(maxTicks int) *Autopilot {
	return &Autopilot{dir: 1, maxTicks: maxTicks}
}

// Direction возвращает текущее направление движения
func (a *Autopilot) Direction() int {
	return a.dir
}

// Next реализует IntentSource
func (a *Autopilot) Next(snap *Snapshot) (Intents, bool) {
	if a.maxTicks > 0 && a.ticks >= a.maxTicks {
		return Intents{}, false
	}
	a.ticks++

	in := a.decide(snap)
	a.trackProgress(snap, &in)
	return in, true
}

func (a *Autopilot) decide(snap *Snapshot) Intents {
	left, right, top, bottom := snap.PlayerTiles()

	front := right + 1
	if a.dir < 0 {
		front = left - 1
	}
	if front < 0 || front >= snap.Width {
		return a.turn()
	}

	// В прыжке только продолжаем движение
	if snap.Player.Jumping {
		in := a.release()
		in.Move = a.dir
		return in
	}

	solid := func(x, y int) bool {
		return block.IsSolid(snap.Tile(vec.Vec2{X: x, Y: y}).Kind)
	}

	// Ступень в один тайл: ноги упираются, голове и месту над ней свободно
	if solid(front, bottom) && !solid(front, top) && !solid(front, top-1) {
		headroom := true
		for x := left; x <= right; x++ {
			if solid(x, top-1) {
				headroom = false
			}
		}
		if headroom {
			in := a.release()
			in.Jump = true
			in.Move = a.dir
			return in
		}
	}

	for y := top; y <= bottom; y++ {
		if !solid(front, y) {
			continue
		}
		target := vec.Vec2{X: front, Y: y}
		if block.PropertiesOf(snap.Tile(target).Kind).Hardness.IsIndestructible() {
			return a.turn()
		}
		a.mining = true
		return Intents{Mine: &target}
	}

	in := a.release()
	in.Move = a.dir

	ground := vec.Vec2{X: front, Y: bottom + 1}
	if ground.Y < snap.Height && snap.Tile(ground).Kind == block.AirBlockID {
		if kind, ok := firstStocked(snap.Player.Inventory); ok {
			in.Place = &PlaceIntent{Pos: ground, Kind: kind}
		}
	}
	return in
}

// turn разворачивает автопилот и отпускает добычу
func (a *Autopilot) turn() Intents {
	a.dir = -a.dir
	a.stuck = 0
	return a.release()
}

func (a *Autopilot) release() Intents {
	if !a.mining {
		return Intents{}
	}
	a.mining = false
	return Intents{MineReleased: true}
}

// trackProgress разворачивает автопилот, если он долго упирается на месте
func (a *Autopilot) trackProgress(snap *Snapshot, in *Intents) {
	if in.Move == 0 || snap.Player.Pos.X != a.lastX {
		a.stuck = 0
		a.lastX = snap.Player.Pos.X
		return
	}
	a.stuck++
	if a.stuck >= stuckTicks {
		a.dir = -a.dir
		a.stuck = 0
	}
}

// firstStocked возвращает первый вид в порядке слотов, которого есть хотя бы один
func firstStocked(counts [entity.HotbarSize]int) (block.BlockID, bool) {
	for i, n := range counts {
		if n > 0 && entity.Hotbar[i] != block.BedrockBlockID {
			return entity.Hotbar[i], true
		}
	}
	return block.AirBlockID, false
}
