package sim

import (
	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

// PlaceIntent: намерение поставить блок в тайл.
// Kind == AirBlockID означает «вид из выбранного слота».
type PlaceIntent struct {
	Pos  vec.Vec2
	Kind block.BlockID
}

// Intents: дискретные намерения игрока на один тик
type Intents struct {
	Move         int       // -1 влево, 1 вправо, 0 стоять
	Jump         bool      // Прыжок (игнорируется в воздухе)
	Mine         *vec.Vec2 // Удерживаемая добыча тайла
	MineReleased bool      // Кнопка добычи отпущена
	Place        *PlaceIntent
	SelectSlot   *int // Прямой выбор слота (клавиши 1..8)
	CycleSlot    int  // Прокрутка слотов (колесо мыши)
}

// Slot возвращает указатель на индекс слота для Intents.SelectSlot
func Slot(i int) *int {
	return &i
}

// Tile возвращает указатель на координату для Intents.Mine
func Tile(x, y int) *vec.Vec2 {
	return &vec.Vec2{X: x, Y: y}
}
