package physics

import (
	"math"

	"github.com/annel0/tile-sandbox/internal/vec"
)

// SolidChecker сообщает, твёрд ли тайл (колонка, строка).
// Для координат вне мира должен возвращать false.
type SolidChecker func(col, row int) bool

// BoxCollider представляет прямоугольный коллайдер в пикселях.
// Позиция тела: его левый верхний угол.
type BoxCollider struct {
	Width  float64
	Height float64
}

// NewBoxCollider создаёт новый коллайдер с указанными размерами
func NewBoxCollider(width, height float64) *BoxCollider {
	return &BoxCollider{
		Width:  width,
		Height: height,
	}
}

// Center возвращает центр коллайдера, стоящего в pos
func (bc *BoxCollider) Center(pos vec.Vec2Float) vec.Vec2Float {
	return vec.Vec2Float{X: pos.X + bc.Width/2, Y: pos.Y + bc.Height/2}
}

// TileOf переводит пиксельную координату в индекс тайла (с округлением вниз)
func TileOf(px, tileSize float64) int {
	return int(math.Floor(px / tileSize))
}

// SpanTiles возвращает первый и последний тайлы, которые покрывает отрезок [start, start+length).
func SpanTiles(start, length, tileSize float64) (first, last int) {
	return TileOf(start, tileSize), TileOf(start+length-1, tileSize)
}

// ResolveHorizontal сдвигает тело по X на dx и прижимает его к первой твёрдой колонке
// на ведущей кромке. Проверяются все строки, которые тело занимает по вертикали.
// Проверка дискретная: проверяется только колонка назначения, без протяжки.
func ResolveHorizontal(pos vec.Vec2Float, dx float64, box *BoxCollider, tileSize float64, solid SolidChecker) (newX float64, blocked bool) {
	newX = pos.X + dx
	if dx == 0 {
		return newX, false
	}

	top, bottom := SpanTiles(pos.Y, box.Height, tileSize)

	if dx > 0 {
		edge := TileOf(newX+box.Width, tileSize)
		for row := top; row <= bottom; row++ {
			if solid(edge, row) {
				return float64(edge)*tileSize - box.Width, true
			}
		}
		return newX, false
	}

	edge := TileOf(newX, tileSize)
	for row := top; row <= bottom; row++ {
		if solid(edge, row) {
			return float64(edge+1) * tileSize, true
		}
	}
	return newX, false
}

// ResolveVertical сдвигает тело по Y на dy и прижимает его к препятствию.
// При падении проверяется строка под нижней кромкой, при подъёме: над верхней.
func ResolveVertical(pos vec.Vec2Float, dy float64, box *BoxCollider, tileSize float64, solid SolidChecker) (newY float64, hit bool) {
	newY = pos.Y + dy
	if dy == 0 {
		return newY, false
	}

	left, right := SpanTiles(pos.X, box.Width, tileSize)

	if dy > 0 {
		edge := TileOf(newY+box.Height, tileSize)
		for col := left; col <= right; col++ {
			if solid(col, edge) {
				return float64(edge)*tileSize - box.Height, true
			}
		}
		return newY, false
	}

	edge := TileOf(newY, tileSize)
	for col := left; col <= right; col++ {
		if solid(col, edge) {
			return float64(edge+1) * tileSize, true
		}
	}
	return newY, false
}

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
