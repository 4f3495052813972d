package world

import "github.com/annel0/tile-sandbox/internal/vec"

// MiningState хранит прогресс добычи.
// Урон копится только на одном тайле во всей системе: смена цели или отпускание
// кнопки обнуляет прогресс целиком.
type MiningState struct {
	target   vec.Vec2
	progress float64
	active   bool
}

// Reset сбрасывает прогресс и текущую цель
func (m *MiningState) Reset() {
	*m = MiningState{}
}

// Target возвращает текущую цель добычи
func (m *MiningState) Target() (vec.Vec2, bool) {
	return m.target, m.active
}

// Progress возвращает накопленный урон тайла (0 для всех, кроме цели)
func (m *MiningState) Progress(pos vec.Vec2) float64 {
	if !m.active || m.target != pos {
		return 0
	}
	return m.progress
}

// Add добавляет урон к тайлу и возвращает новый прогресс.
// Если цель сменилась, прогресс предыдущей цели теряется.
func (m *MiningState) Add(pos vec.Vec2, amount float64) float64 {
	if !m.active || m.target != pos {
		m.target = pos
		m.progress = 0
		m.active = true
	}
	m.progress += amount
	return m.progress
}
