package world

import (
	"github.com/annel0/tile-sandbox/internal/world/block"
)

// Block представляет собой содержимое тайла.
// Нулевое значение (AirBlockID): явный вариант «пусто», любой другой ID: занятый тайл.
type Block struct {
	ID block.BlockID // Идентификатор вида блока
}

// EmptyBlock возвращает пустой тайл
func EmptyBlock() Block {
	return Block{ID: block.AirBlockID}
}

// NewBlock создаёт занятый тайл указанного вида
func NewBlock(id block.BlockID) Block {
	return Block{ID: id}
}

// IsEmpty возвращает true для пустого тайла
func (b Block) IsEmpty() bool {
	return b.ID == block.AirBlockID
}

// Properties возвращает статические свойства вида
func (b Block) Properties() block.Properties {
	return block.PropertiesOf(b.ID)
}

// IsSolid возвращает true, если блок участвует в коллизиях
func (b Block) IsSolid() bool {
	return !b.IsEmpty() && b.Properties().Solid
}

// String реализует fmt.Stringer
func (b Block) String() string {
	return b.ID.String()
}
