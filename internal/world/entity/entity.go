package entity

import (
	"github.com/annel0/tile-sandbox/internal/physics"
	"github.com/annel0/tile-sandbox/internal/vec"
)

// EntityType представляет тип сущности
type EntityType uint16

const (
	EntityTypePlayer EntityType = iota
)

// Terrain: то, что сущность знает о мире: проходимость тайлов и размеры
type Terrain interface {
	IsSolid(col, row int) bool
	Width() int
	Height() int
	TileSize() float64
}

// Entity представляет базовую сущность в мире
type Entity struct {
	ID         uint64              // Уникальный идентификатор сущности
	Type       EntityType          // Тип сущности
	PrecisePos vec.Vec2Float       // Левый верхний угол хитбокса в пикселях
	Velocity   vec.Vec2Float       // Текущая скорость, пикселей за тик
	Collider   physics.BoxCollider // Хитбокс
}

// NewEntity создаёт новую сущность
func NewEntity(id uint64, entityType EntityType, pos vec.Vec2Float, width, height float64) *Entity {
	return &Entity{
		ID:         id,
		Type:       entityType,
		PrecisePos: pos,
		Collider:   physics.BoxCollider{Width: width, Height: height},
	}
}

// Center возвращает центр хитбокса
func (e *Entity) Center() vec.Vec2Float {
	return e.Collider.Center(e.PrecisePos)
}

// Tile возвращает тайл, в котором находится левый верхний угол
func (e *Entity) Tile(tileSize float64) vec.Vec2 {
	return e.PrecisePos.ToTile(tileSize)
}
