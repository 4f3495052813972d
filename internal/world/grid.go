package world

import (
	"errors"
	"fmt"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

// ErrInvalidDimensions возвращается при попытке создать сетку с неположительными размерами
var ErrInvalidDimensions = errors.New("world: invalid grid dimensions")

// Grid: плотная сетка тайлов фиксированного размера.
// Хранится по колонкам: index = col*height + row.
type Grid struct {
	width  int
	height int
	tiles  []Block
}

// NewGrid создаёт пустую сетку
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Block, width*height),
	}, nil
}

// Width возвращает ширину в тайлах
func (g *Grid) Width() int { return g.width }

// Height возвращает высоту в тайлах
func (g *Grid) Height() int { return g.height }

// InBounds проверяет, что координата лежит внутри сетки
func (g *Grid) InBounds(pos vec.Vec2) bool {
	return pos.InRect(g.width, g.height)
}

func (g *Grid) index(pos vec.Vec2) int {
	return pos.X*g.height + pos.Y
}

// Get возвращает блок; для координат вне сетки: пустой тайл
func (g *Grid) Get(pos vec.Vec2) Block {
	if !g.InBounds(pos) {
		return EmptyBlock()
	}
	return g.tiles[g.index(pos)]
}

// IsEmpty проверяет, пуст ли тайл. Тайлы вне сетки не считаются пустыми:
// в них нельзя ничего поставить.
func (g *Grid) IsEmpty(pos vec.Vec2) bool {
	return g.InBounds(pos) && g.tiles[g.index(pos)].IsEmpty()
}

// IsSolid сообщает, твёрд ли тайл (колонка, строка); вне сетки: false
func (g *Grid) IsSolid(col, row int) bool {
	return g.Get(vec.Vec2{X: col, Y: row}).IsSolid()
}

// set записывает блок; возвращает false для координат вне сетки
func (g *Grid) set(pos vec.Vec2, id block.BlockID) bool {
	if !g.InBounds(pos) {
		return false
	}
	g.tiles[g.index(pos)] = NewBlock(id)
	return true
}

// Count считает тайлы указанного вида
func (g *Grid) Count(id block.BlockID) int {
	n := 0
	for _, b := range g.tiles {
		if b.ID == id {
			n++
		}
	}
	return n
}

// Column возвращает копию колонки сверху вниз
func (g *Grid) Column(col int) []Block {
	if col < 0 || col >= g.width {
		return nil
	}
	out := make([]Block, g.height)
	copy(out, g.tiles[col*g.height:(col+1)*g.height])
	return out
}
