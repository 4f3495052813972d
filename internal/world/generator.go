package world

import (
	"context"
	"math"
	"math/rand"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/annel0/tile-sandbox/internal/util"
	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

const tracerName = "github.com/annel0/tile-sandbox/internal/world"

// TerrainParams задаёт профиль рельефа и декорации
type TerrainParams struct {
	Noise        util.NoiseParams
	Amplitude    float64 // Размах рельефа в тайлах
	BaseFraction float64 // Базовая высота поверхности как доля высоты мира

	BedrockRows int     // Нижние строки из бедрока
	DirtDepth   int     // Толщина слоя земли под поверхностью
	SandChance  float64 // Шанс песка вместо травы на поверхности

	TreeChance     float64 // Шанс дерева в колонке
	MinTreeSurface int     // Минимальная строка поверхности, где растут деревья
	TrunkMin       int
	TrunkMax       int
	LeafRadiusMin  int
	LeafRadiusMax  int
	LeafHeightMin  int
	LeafHeightMax  int
}

// DefaultTerrainParams возвращает параметры рельефа по умолчанию
func DefaultTerrainParams() TerrainParams {
	return TerrainParams{
		Noise:          util.DefaultNoiseParams(),
		Amplitude:      10,
		BaseFraction:   0.6,
		BedrockRows:    3,
		DirtDepth:      5,
		SandChance:     0.1,
		TreeChance:     0.05,
		MinTreeSurface: 5,
		TrunkMin:       4,
		TrunkMax:       6,
		LeafRadiusMin:  3,
		LeafRadiusMax:  4,
		LeafHeightMin:  3,
		LeafHeightMax:  4,
	}
}

// HeightProfile вычисляет строку поверхности для каждой колонки по шуму Перлина
type HeightProfile struct {
	noise     *util.Noise1D
	baseRow   int
	amplitude float64
	height    int
}

// NewHeightProfile создаёт профиль для мира указанной высоты
func NewHeightProfile(worldHeight int, params TerrainParams, seed int64) *HeightProfile {
	return &HeightProfile{
		noise:     util.NewNoise1D(params.Noise, seed),
		baseRow:   int(float64(worldHeight) * params.BaseFraction),
		amplitude: params.Amplitude,
		height:    worldHeight,
	}
}

// SurfaceRow возвращает строку поверхности колонки.
// Результат ограничен строками мира, чтобы маленькие миры оставались согласованными.
func (hp *HeightProfile) SurfaceRow(col int) int {
	row := hp.baseRow + int(math.Round(hp.noise.At(float64(col))*hp.amplitude))
	if row < 0 {
		return 0
	}
	if row >= hp.height {
		return hp.height - 1
	}
	return row
}

// BaseRow возвращает базовую строку поверхности
func (hp *HeightProfile) BaseRow() int {
	return hp.baseRow
}

// GenerationResult: итоги генерации
type GenerationResult struct {
	Surface   []int // Строка поверхности каждой колонки
	Trees     int
	SandTiles int
}

// WorldGenerator генерирует ландшафт мира
type WorldGenerator struct {
	Seed   int64
	Params TerrainParams
}

// NewWorldGenerator создаёт новый генератор мира
func NewWorldGenerator(seed int64, params TerrainParams) *WorldGenerator {
	return &WorldGenerator{
		Seed:   seed,
		Params: params,
	}
}

// Generate заполняет пустую сетку слоями и деревьями.
// Один и тот же сид даёт один и тот же мир.
func (wg *WorldGenerator) Generate(ctx context.Context, grid *Grid) GenerationResult {
	_, span := otel.Tracer(tracerName).Start(ctx, "world.generate")
	defer span.End()

	rng := rand.New(rand.NewSource(wg.Seed))
	profile := NewHeightProfile(grid.Height(), wg.Params, wg.Seed)

	result := GenerationResult{Surface: make([]int, grid.Width())}

	for x := 0; x < grid.Width(); x++ {
		surface := profile.SurfaceRow(x)
		result.Surface[x] = surface

		for y := 0; y < grid.Height(); y++ {
			if id, ok := wg.strataAt(grid.Height(), surface, y); ok {
				grid.set(vec.Vec2{X: x, Y: y}, id)
			}
		}

		// Песок заменяет только траву, бедрок имеет приоритет
		surfacePos := vec.Vec2{X: x, Y: surface}
		if grid.Get(surfacePos).ID == block.GrassBlockID && rng.Float64() < wg.Params.SandChance {
			grid.set(surfacePos, block.SandBlockID)
			result.SandTiles++
		}
	}

	for x := 0; x < grid.Width(); x++ {
		if rng.Float64() >= wg.Params.TreeChance {
			continue
		}
		surface := result.Surface[x]
		if x < grid.Width()-2 && surface > wg.Params.MinTreeSurface {
			wg.plantTree(grid, x, surface, rng)
			result.Trees++
		}
	}

	span.SetAttributes(
		attribute.Int("world.width", grid.Width()),
		attribute.Int("world.height", grid.Height()),
		attribute.Int("world.trees", result.Trees),
		attribute.Int64("world.seed", wg.Seed),
	)

	return result
}

// strataAt возвращает вид слоя для строки y колонки с поверхностью surface
func (wg *WorldGenerator) strataAt(height, surface, y int) (block.BlockID, bool) {
	switch {
	case y >= height-wg.Params.BedrockRows:
		return block.BedrockBlockID, true
	case y > surface+wg.Params.DirtDepth:
		return block.RockBlockID, true
	case y > surface:
		return block.DirtBlockID, true
	case y == surface:
		return block.GrassBlockID, true
	default:
		return block.AirBlockID, false
	}
}

// plantTree выращивает ствол над поверхностью и круглую крону вокруг его вершины.
// Листва пишется только в пустые тайлы.
func (wg *WorldGenerator) plantTree(grid *Grid, x, surface int, rng *rand.Rand) {
	p := wg.Params
	trunk := randRange(rng, p.TrunkMin, p.TrunkMax)

	for y := surface - 1; y >= surface-trunk; y-- {
		grid.set(vec.Vec2{X: x, Y: y}, block.WoodBlockID)
	}

	radius := randRange(rng, p.LeafRadiusMin, p.LeafRadiusMax)
	band := randRange(rng, p.LeafHeightMin, p.LeafHeightMax)
	centerY := surface - trunk

	for lx := x - radius; lx <= x+radius; lx++ {
		for ly := centerY - band; ly <= centerY; ly++ {
			pos := vec.Vec2{X: lx, Y: ly}
			if !grid.IsEmpty(pos) {
				continue
			}
			dx := float64(lx - x)
			dy := float64(ly - centerY)
			if math.Sqrt(dx*dx+dy*dy) <= float64(radius) {
				grid.set(pos, block.LeavesBlockID)
			}
		}
	}
}

// randRange возвращает целое в [lo, hi] включительно
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
