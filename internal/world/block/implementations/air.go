package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// AirBehavior реализует поведение пустого тайла.
// Воздух не твёрдый, не добывается и ничего не оставляет.
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "air"
}

// Properties возвращает статические свойства воздуха
func (b *AirBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    false,
		Hardness: block.Indestructible(),
	}
}
