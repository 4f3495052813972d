package entity

import (
	"github.com/annel0/tile-sandbox/internal/physics"
	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

// PlayerConfig: физические параметры игрока (пиксели и пиксели за тик)
type PlayerConfig struct {
	Width            float64
	Height           float64
	Speed            float64 // Горизонтальная скорость
	Gravity          float64 // Ускорение вниз
	TerminalVelocity float64 // Предельная скорость падения
	JumpImpulse      float64 // Вертикальная скорость прыжка (вверх: отрицательная)
	PickupRadius     float64 // Радиус подбора предметов от центра тела
}

// DefaultPlayerConfig возвращает параметры для тайла указанного размера:
// тело 1×2 тайла, радиус подбора полтора тайла.
func DefaultPlayerConfig(tileSize float64) PlayerConfig {
	return PlayerConfig{
		Width:            tileSize,
		Height:           tileSize * 2,
		Speed:            5,
		Gravity:          0.8,
		TerminalVelocity: 15,
		JumpImpulse:      -15,
		PickupRadius:     tileSize * 1.5,
	}
}

// Player: аватар игрока: тело с гравитацией, инвентарь и выбранный слот
type Player struct {
	Entity
	Jumping   bool // В воздухе после прыжка; снимается только приземлением
	Inventory Inventory

	config   PlayerConfig
	selected int
}

// NewPlayer создаёт игрока с левым верхним углом в pos
func NewPlayer(id uint64, pos vec.Vec2Float, config PlayerConfig) *Player {
	return &Player{
		Entity: *NewEntity(id, EntityTypePlayer, pos, config.Width, config.Height),
		config: config,
	}
}

// SpawnAbove возвращает позицию, в которой тело стоит на тайле (col, surfaceRow)
func SpawnAbove(col, surfaceRow int, tileSize float64, config PlayerConfig) vec.Vec2Float {
	return vec.Vec2Float{
		X: float64(col) * tileSize,
		Y: float64(surfaceRow)*tileSize - config.Height,
	}
}

// Config возвращает физические параметры игрока
func (p *Player) Config() PlayerConfig {
	return p.config
}

// Pos возвращает левый верхний угол тела
func (p *Player) Pos() vec.Vec2Float {
	return p.PrecisePos
}

// Box возвращает хитбокс тела
func (p *Player) Box() *physics.BoxCollider {
	return &p.Collider
}

// Move сдвигает тело по горизонтали на dir*Speed (dir: -1, 0, 1).
// Скорость задаётся напрямую намерением, инерции нет.
func (p *Player) Move(dir int, t Terrain) {
	if dir == 0 {
		return
	}
	if dir > 0 {
		dir = 1
	} else {
		dir = -1
	}

	ts := t.TileSize()
	newX, _ := physics.ResolveHorizontal(p.PrecisePos, float64(dir)*p.config.Speed, &p.Collider, ts, t.IsSolid)
	p.PrecisePos.X = physics.Clamp(newX, 0, float64(t.Width())*ts-p.Collider.Width)
}

// Jump запускает прыжок, если тело не в воздухе
func (p *Player) Jump() bool {
	if p.Jumping {
		return false
	}
	p.Velocity.Y = p.config.JumpImpulse
	p.Jumping = true
	return true
}

// Update применяет гравитацию и вертикальные коллизии на один тик
func (p *Player) Update(t Terrain) {
	p.Velocity.Y += p.config.Gravity
	if p.Velocity.Y > p.config.TerminalVelocity {
		p.Velocity.Y = p.config.TerminalVelocity
	}

	ts := t.TileSize()
	newY, hit := physics.ResolveVertical(p.PrecisePos, p.Velocity.Y, &p.Collider, ts, t.IsSolid)
	p.PrecisePos.Y = newY
	if hit {
		if p.Velocity.Y > 0 {
			p.Jumping = false
		}
		p.Velocity.Y = 0
	}

	// Провалился под мир: возвращаем наверх
	if p.PrecisePos.Y > float64(t.Height())*ts {
		p.PrecisePos.Y = 0
		p.Velocity.Y = 0
	}
	if p.PrecisePos.Y < 0 {
		p.PrecisePos.Y = 0
		p.Velocity.Y = 0
	}
}

// CanPickup сообщает, достаточно ли близко точка для подбора (строго меньше радиуса)
func (p *Player) CanPickup(center vec.Vec2Float) bool {
	return p.Center().DistanceTo(center) < p.config.PickupRadius
}

// PickupItem кладёт подобранный предмет в инвентарь
func (p *Player) PickupItem(id block.BlockID) {
	p.Inventory.Add(id, 1)
}

// Take забирает один блок из инвентаря для установки
func (p *Player) Take(id block.BlockID) bool {
	return p.Inventory.Take(id)
}

// SelectSlot выбирает слот; индекс вне панели игнорируется
func (p *Player) SelectSlot(i int) bool {
	if i < 0 || i >= HotbarSize {
		return false
	}
	p.selected = i
	return true
}

// CycleSlot сдвигает выбор на delta слотов по кругу (колесо мыши)
func (p *Player) CycleSlot(delta int) {
	p.selected = ((p.selected+delta)%HotbarSize + HotbarSize) % HotbarSize
}

// SelectedSlot возвращает индекс выбранного слота
func (p *Player) SelectedSlot() int {
	return p.selected
}

// SelectedKind возвращает вид блока в выбранном слоте
func (p *Player) SelectedKind() block.BlockID {
	return Hotbar[p.selected]
}
