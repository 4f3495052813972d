package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// SandBehavior реализует поведение песка (декоративная замена травы на поверхности)
type SandBehavior struct{}

// ID возвращает идентификатор блока
func (b *SandBehavior) ID() block.BlockID {
	return block.SandBlockID
}

// Name возвращает имя блока
func (b *SandBehavior) Name() string {
	return "sand"
}

func (b *SandBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    true,
		Hardness: block.Breakable(10),
		Drop:     block.SandBlockID,
		HasDrop:  true,
	}
}
