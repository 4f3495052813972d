package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// RockBehavior реализует природный камень глубинного слоя.
// Самый прочный из добываемых блоков; при разрушении даёт булыжник.
type RockBehavior struct{}

// ID возвращает идентификатор блока
func (b *RockBehavior) ID() block.BlockID {
	return block.RockBlockID
}

// Name возвращает имя блока
func (b *RockBehavior) Name() string {
	return "rock"
}

// Properties возвращает свойства камня
func (b *RockBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    true,
		Hardness: block.Breakable(500),
		Drop:     block.CobblestoneBlockID,
		HasDrop:  true,
	}
}

// CobblestoneBehavior реализует булыжник, который игрок ставит из инвентаря
type CobblestoneBehavior struct{}

func (b *CobblestoneBehavior) ID() block.BlockID { return block.CobblestoneBlockID }
func (b *CobblestoneBehavior) Name() string      { return "cobblestone" }

func (b *CobblestoneBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    true,
		Hardness: block.Breakable(150),
		Drop:     block.CobblestoneBlockID,
		HasDrop:  true,
	}
}
