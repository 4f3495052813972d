package world

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

func generate(t *testing.T, w, h int, seed int64, params TerrainParams) (*Grid, GenerationResult) {
	t.Helper()
	grid, err := NewGrid(w, h)
	require.NoError(t, err)
	result := NewWorldGenerator(seed, params).Generate(context.Background(), grid)
	return grid, result
}

func TestGenerator_Deterministic(t *testing.T) {
	a, ra := generate(t, 100, 100, 42, DefaultTerrainParams())
	b, rb := generate(t, 100, 100, 42, DefaultTerrainParams())

	assert.Equal(t, ra, rb)
	for x := 0; x < 100; x++ {
		require.Equal(t, a.Column(x), b.Column(x), "колонка %d различается при одинаковом сиде", x)
	}
}

func TestGenerator_Strata(t *testing.T) {
	params := DefaultTerrainParams()
	params.TreeChance = 0
	params.SandChance = 0

	grid, result := generate(t, 100, 100, 7, params)

	for x := 0; x < grid.Width(); x++ {
		s := result.Surface[x]
		for y := 0; y < grid.Height(); y++ {
			got := grid.Get(vec.Vec2{X: x, Y: y}).ID
			var want block.BlockID
			switch {
			case y >= grid.Height()-3:
				want = block.BedrockBlockID
			case y > s+5:
				want = block.RockBlockID
			case y > s:
				want = block.DirtBlockID
			case y == s:
				want = block.GrassBlockID
			default:
				want = block.AirBlockID
			}
			require.Equal(t, want, got, "тайл (%d,%d), поверхность %d", x, y, s)
		}
	}
}

func TestGenerator_SurfaceNearBase(t *testing.T) {
	params := DefaultTerrainParams()
	grid, result := generate(t, 100, 100, 3, params)

	base := int(float64(grid.Height()) * params.BaseFraction)
	for x, s := range result.Surface {
		assert.InDelta(t, base, s, params.Amplitude+1, "колонка %d", x)
	}
}

func TestGenerator_BedrockRowsAlwaysBedrock(t *testing.T) {
	grid, _ := generate(t, 64, 64, 11, DefaultTerrainParams())
	for x := 0; x < grid.Width(); x++ {
		for y := grid.Height() - 3; y < grid.Height(); y++ {
			require.Equal(t, block.BedrockBlockID, grid.Get(vec.Vec2{X: x, Y: y}).ID)
		}
	}
}

func TestGenerator_SandOnlyOnSurface(t *testing.T) {
	params := DefaultTerrainParams()
	params.SandChance = 1
	params.TreeChance = 0

	grid, result := generate(t, 50, 60, 5, params)
	assert.Equal(t, 50, result.SandTiles, "при шансе 1 вся трава становится песком")
	assert.Zero(t, grid.Count(block.GrassBlockID))
	for x, s := range result.Surface {
		assert.Equal(t, block.SandBlockID, grid.Get(vec.Vec2{X: x, Y: s}).ID)
	}
}

func TestGenerator_Trees(t *testing.T) {
	params := DefaultTerrainParams()
	params.TreeChance = 1
	params.SandChance = 0

	grid, result := generate(t, 60, 80, 9, params)
	require.Positive(t, result.Trees)
	assert.LessOrEqual(t, result.Trees, 58, "в двух крайних правых колонках деревьев нет")

	for x := 0; x < grid.Width()-2; x++ {
		s := result.Surface[x]
		if s <= params.MinTreeSurface {
			continue
		}
		above := grid.Get(vec.Vec2{X: x, Y: s - 1}).ID
		assert.Contains(t, []block.BlockID{block.WoodBlockID, block.LeavesBlockID}, above,
			"над поверхностью колонки %d должно быть дерево", x)
	}
	assert.Positive(t, grid.Count(block.LeavesBlockID))
}

func TestGenerator_LeavesDoNotOverwrite(t *testing.T) {
	params := DefaultTerrainParams()
	params.TreeChance = 1
	params.SandChance = 0

	grid, result := generate(t, 40, 80, 21, params)

	// Листва не может заменить ни ствол, ни грунт
	for x := 0; x < grid.Width(); x++ {
		for y := result.Surface[x]; y < grid.Height(); y++ {
			assert.NotEqual(t, block.LeavesBlockID, grid.Get(vec.Vec2{X: x, Y: y}).ID)
		}
	}
}

func TestHeightProfile_Clamped(t *testing.T) {
	params := DefaultTerrainParams()
	params.Amplitude = 1000

	hp := NewHeightProfile(20, params, 1)
	for x := 0; x < 200; x++ {
		row := hp.SurfaceRow(x)
		assert.GreaterOrEqual(t, row, 0)
		assert.Less(t, row, 20)
	}
	assert.Equal(t, 12, hp.BaseRow())
}
