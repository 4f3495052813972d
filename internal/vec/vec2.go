package vec

import "math"

// Vec2 представляет целочисленные координаты тайла (колонка, строка)
type Vec2 struct {
	X, Y int
}

// Add складывает две позиции
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// InRect проверяет, лежит ли точка в полуоткрытом прямоугольнике [0,w)×[0,h)
func (v Vec2) InRect(w, h int) bool {
	return v.X >= 0 && v.X < w && v.Y >= 0 && v.Y < h
}

// Center возвращает центр тайла в пикселях
func (v Vec2) Center(tileSize float64) Vec2Float {
	return Vec2Float{
		X: float64(v.X)*tileSize + tileSize/2,
		Y: float64(v.Y)*tileSize + tileSize/2,
	}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
