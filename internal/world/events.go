package world

import (
	"github.com/google/uuid"

	"github.com/annel0/tile-sandbox/internal/logging"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

// EventType определяет тип события
type EventType uint8

const (
	EventTypeBlockPlace   EventType = iota // Блок поставлен из инвентаря
	EventTypeBlockBreak                    // Блок разрушен
	EventTypeMiningReset                   // Прогресс добычи сброшен
	EventTypeDropSpawn                     // Появился выпавший предмет
	EventTypeDropPickup                    // Предмет подобран игроком
	EventTypeDropLost                      // Предмет выпал за пределы мира
	EventTypeWorldGenerated                // Завершена генерация ландшафта
)

var eventTypeNames = [...]string{
	EventTypeBlockPlace:     "block_place",
	EventTypeBlockBreak:     "block_break",
	EventTypeMiningReset:    "mining_reset",
	EventTypeDropSpawn:      "drop_spawn",
	EventTypeDropPickup:     "drop_pickup",
	EventTypeDropLost:       "drop_lost",
	EventTypeWorldGenerated: "world_generated",
}

// String возвращает имя типа события
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event представляет собой интерфейс для всех событий
type Event interface {
	GetType() EventType
}

// Listener получает события мира синхронно, внутри тика
type Listener func(Event)

// BlockEvent представляет событие, связанное с блоком
type BlockEvent struct {
	EventType EventType
	Position  vec.Vec2      // Координаты тайла
	Block     block.BlockID // Вид блока до разрушения или после установки
}

// GetType возвращает тип события
func (e BlockEvent) GetType() EventType {
	return e.EventType
}

// DropEvent представляет событие, связанное с выпавшим предметом
type DropEvent struct {
	EventType EventType
	DropID    uuid.UUID
	Kind      block.BlockID
	Position  vec.Vec2Float
}

// GetType возвращает тип события
func (e DropEvent) GetType() EventType {
	return e.EventType
}

// GeneratedEvent сообщает итоги генерации мира
type GeneratedEvent struct {
	Width, Height int
	Trees         int
	SandTiles     int
}

// GetType возвращает тип события
func (e GeneratedEvent) GetType() EventType {
	return EventTypeWorldGenerated
}

// LoggingListener возвращает слушателя, который пишет события мира в лог компонента.
// Изменения блоков идут на уровне DEBUG, движение предметов на уровне TRACE.
func LoggingListener(logger *logging.Logger) Listener {
	return func(ev Event) {
		switch e := ev.(type) {
		case BlockEvent:
			logger.Debug("[%s] %s в (%d,%d)", e.EventType, e.Block, e.Position.X, e.Position.Y)
		case DropEvent:
			logger.Trace("[%s] %s id=%s (%.1f,%.1f)", e.EventType, e.Kind, e.DropID, e.Position.X, e.Position.Y)
		case GeneratedEvent:
			logger.Debug("[%s] %dx%d деревьев=%d песка=%d", e.GetType(), e.Width, e.Height, e.Trees, e.SandTiles)
		}
	}
}
