package implementations

import "github.com/annel0/tile-sandbox/internal/world/block"

// GrassBehavior реализует поведение блока травы.
// Трава лежит только на поверхности; при добыче выпадает земля.
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "grass"
}

// Properties возвращает свойства травы
func (b *GrassBehavior) Properties() block.Properties {
	return block.Properties{
		Solid:    true,
		Hardness: block.Breakable(10),
		Drop:     block.DirtBlockID,
		HasDrop:  true,
	}
}
