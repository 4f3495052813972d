package vec

import "math"

// Vec2Float представляет 2D координаты с плавающей точкой (пиксели мира)
type Vec2Float struct {
	X, Y float64
}

// ToTile возвращает тайл, в котором лежит точка.
// Деление с округлением вниз, чтобы отрицательные координаты попадали в тайл -1.
func (v Vec2Float) ToTile(tileSize float64) Vec2 {
	return Vec2{
		X: int(math.Floor(v.X / tileSize)),
		Y: int(math.Floor(v.Y / tileSize)),
	}
}

// Add складывает два вектора
func (v Vec2Float) Add(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2Float) Sub(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul умножает вектор на скаляр
func (v Vec2Float) Mul(scalar float64) Vec2Float {
	return Vec2Float{X: v.X * scalar, Y: v.Y * scalar}
}

// Length возвращает длину вектора
func (v Vec2Float) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2Float) DistanceTo(other Vec2Float) float64 {
	return v.Sub(other).Length()
}
