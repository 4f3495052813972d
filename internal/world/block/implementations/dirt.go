package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает имя блока
func (b *DirtBehavior) Name() string {
	return "dirt"
}

// Properties возвращает свойства: мягкий блок, выпадает сам
func (b *DirtBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    true,
		Hardness: block.Breakable(10),
		Drop:     block.DirtBlockID,
		HasDrop:  true,
	}
}
