package sim

import (
	"github.com/google/uuid"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world"
	"github.com/annel0/tile-sandbox/internal/world/block"
	"github.com/annel0/tile-sandbox/internal/world/entity"
)

// TileView: состояние тайла для отрисовки
type TileView struct {
	Pos    vec.Vec2
	Kind   block.BlockID
	Damage float64 // Доля прочности, снятая добычей (0..1)
	Stage  int     // Кадр оверлея трещин 0..9
}

// DropView: выпавший предмет для отрисовки
type DropView struct {
	ID      uuid.UUID
	Kind    block.BlockID
	Pos     vec.Vec2Float
	Size    float64
	Bobbing float64
	Offset  float64 // Вертикальное смещение покачивания
}

// PlayerView: состояние игрока для отрисовки и HUD
type PlayerView struct {
	Pos          vec.Vec2Float
	Size         vec.Vec2Float
	Velocity     vec.Vec2Float
	Jumping      bool
	SelectedSlot int
	SelectedKind block.BlockID
	Inventory    [entity.HotbarSize]int // Счётчики в порядке слотов
}

// Snapshot: представление состояния после тика.
// Тайлы читаются из живого мира, поэтому снимок действителен до следующего Step.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	TileSize float64
	Player   PlayerView
	Drops    []DropView

	world *world.World
}

// Snapshot собирает представление текущего состояния
func (s *Simulation) Snapshot() *Snapshot {
	p := s.player
	phys := s.world.DropPhysics()

	drops := s.world.Drops()
	views := make([]DropView, len(drops))
	for i := range drops {
		d := &drops[i]
		views[i] = DropView{
			ID:      d.ID,
			Kind:    d.Kind,
			Pos:     d.Pos,
			Size:    d.Size,
			Bobbing: d.Bobbing,
			Offset:  d.BobOffset(phys.BobbingAmplitude),
		}
	}

	return &Snapshot{
		Tick:     s.tick,
		Width:    s.world.Width(),
		Height:   s.world.Height(),
		TileSize: s.world.TileSize(),
		Player: PlayerView{
			Pos:          p.Pos(),
			Size:         vec.Vec2Float{X: p.Box().Width, Y: p.Box().Height},
			Velocity:     p.Velocity,
			Jumping:      p.Jumping,
			SelectedSlot: p.SelectedSlot(),
			SelectedKind: p.SelectedKind(),
			Inventory:    p.Inventory.Snapshot(),
		},
		Drops: views,
		world: s.world,
	}
}

// Tile возвращает состояние одного тайла; вне мира: пустой тайл
func (sn *Snapshot) Tile(pos vec.Vec2) TileView {
	return TileView{
		Pos:    pos,
		Kind:   sn.world.Block(pos).ID,
		Damage: sn.world.DamageRatio(pos),
		Stage:  sn.world.DamageStage(pos),
	}
}

// Tiles возвращает непустые тайлы прямоугольника [min, max] (включительно), обрезанного по миру
func (sn *Snapshot) Tiles(min, max vec.Vec2) []TileView {
	if min.X < 0 {
		min.X = 0
	}
	if min.Y < 0 {
		min.Y = 0
	}
	if max.X >= sn.Width {
		max.X = sn.Width - 1
	}
	if max.Y >= sn.Height {
		max.Y = sn.Height - 1
	}

	var out []TileView
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			pos := vec.Vec2{X: x, Y: y}
			if sn.world.Block(pos).IsEmpty() {
				continue
			}
			out = append(out, sn.Tile(pos))
		}
	}
	return out
}

// PlayerTiles возвращает крайние колонки и строки тайлов, занятых телом игрока
func (sn *Snapshot) PlayerTiles() (left, right, top, bottom int) {
	p := sn.Player
	left = vec.Vec2Float{X: p.Pos.X}.ToTile(sn.TileSize).X
	right = vec.Vec2Float{X: p.Pos.X + p.Size.X - 1}.ToTile(sn.TileSize).X
	top = vec.Vec2Float{Y: p.Pos.Y}.ToTile(sn.TileSize).Y
	bottom = vec.Vec2Float{Y: p.Pos.Y + p.Size.Y - 1}.ToTile(sn.TileSize).Y
	return left, right, top, bottom
}
