package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseParams задаёт параметры фрактального шума Перлина
type NoiseParams struct {
	Octaves     int     // Количество октав
	Persistence float64 // Падение амплитуды на каждую октаву
	Lacunarity  float64 // Рост частоты на каждую октаву
	Scale       float64 // Горизонтальный масштаб (колонок на единицу шума)
}

// DefaultNoiseParams возвращает параметры рельефа по умолчанию
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Scale:       50.0,
	}
}

// Noise1D: одномерный когерентный шум с фиксированным сидом.
// Каждый экземпляр владеет своим генератором, глобального состояния нет.
type Noise1D struct {
	params NoiseParams
	perlin *perlin.Perlin
}

// NewNoise1D создаёт генератор шума.
// В go-perlin alpha делит амплитуду каждой следующей октавы, beta умножает частоту,
// поэтому alpha = 1/persistence, beta = lacunarity.
func NewNoise1D(params NoiseParams, seed int64) *Noise1D {
	alpha := 2.0
	if params.Persistence > 0 {
		alpha = 1.0 / params.Persistence
	}
	beta := params.Lacunarity
	if beta <= 0 {
		beta = 2.0
	}
	octaves := params.Octaves
	if octaves < 1 {
		octaves = 1
	}
	if params.Scale <= 0 {
		params.Scale = 1
	}

	return &Noise1D{
		params: params,
		perlin: perlin.NewPerlin(alpha, beta, int32(octaves), seed),
	}
}

// At возвращает значение шума для колонки (примерно от -1 до 1)
func (n *Noise1D) At(column float64) float64 {
	return n.perlin.Noise1D(column / n.params.Scale)
}

// Params возвращает параметры генератора
func (n *Noise1D) Params() NoiseParams {
	return n.params
}
