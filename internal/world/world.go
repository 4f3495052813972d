package world

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/annel0/tile-sandbox/internal/logging"
	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
	_ "github.com/annel0/tile-sandbox/internal/world/block/implementations"
)

// BlockSource: инвентарь, из которого берутся ставимые блоки
type BlockSource interface {
	// Take забирает один блок; false, если блоков этого вида нет
	Take(id block.BlockID) bool
}

// Collector: тело, способное подбирать выпавшие предметы
type Collector interface {
	CanPickup(center vec.Vec2Float) bool
	PickupItem(id block.BlockID)
}

// Options описывает мир при создании
type Options struct {
	Width          int
	Height         int
	TileSize       float64
	Seed           int64
	HandMiningRate float64 // Урон за тик при добыче рукой
	Terrain        TerrainParams
	Drops          DropPhysics
}

// DefaultOptions возвращает параметры мира 100×100 с тайлом 32px
func DefaultOptions() Options {
	const tileSize = 32
	return Options{
		Width:          100,
		Height:         100,
		TileSize:       tileSize,
		HandMiningRate: 0.5,
		Terrain:        DefaultTerrainParams(),
		Drops:          DefaultDropPhysics(tileSize),
	}
}

// World владеет сеткой, прогрессом добычи и выпавшими предметами.
// Не потокобезопасен: все изменения происходят внутри одного тика.
type World struct {
	grid      *Grid
	mining    MiningState
	drops     []*ItemDrop
	surface   []int
	tileSize  float64
	handRate  float64
	physics   DropPhysics
	rng       *rand.Rand
	listeners []Listener
	logger    *logging.Logger
}

// NewEmptyWorld создаёт мир без генерации ландшафта
func NewEmptyWorld(opts Options) (*World, error) {
	if opts.TileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %v", ErrInvalidDimensions, opts.TileSize)
	}
	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	w := &World{
		grid:     grid,
		surface:  make([]int, opts.Width),
		tileSize: opts.TileSize,
		handRate: opts.HandMiningRate,
		physics:  opts.Drops,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logger:   logging.GetWorldLogger(),
	}
	w.Subscribe(LoggingListener(w.logger))
	return w, nil
}

// NewWorld создаёт мир и один раз заполняет его генератором
func NewWorld(ctx context.Context, opts Options) (*World, error) {
	w, err := NewEmptyWorld(opts)
	if err != nil {
		return nil, err
	}

	result := NewWorldGenerator(opts.Seed, opts.Terrain).Generate(ctx, w.grid)
	w.surface = result.Surface

	w.logger.Info("Мир %dx%d сгенерирован (seed=%d): деревьев %d, песка %d",
		opts.Width, opts.Height, opts.Seed, result.Trees, result.SandTiles)
	w.emit(GeneratedEvent{Width: opts.Width, Height: opts.Height, Trees: result.Trees, SandTiles: result.SandTiles})
	return w, nil
}

// Subscribe регистрирует слушателя событий мира
func (w *World) Subscribe(l Listener) {
	w.listeners = append(w.listeners, l)
}

func (w *World) emit(ev Event) {
	for _, l := range w.listeners {
		l(ev)
	}
}

// Grid возвращает сетку для чтения
func (w *World) Grid() *Grid { return w.grid }

// Width возвращает ширину в тайлах
func (w *World) Width() int { return w.grid.Width() }

// Height возвращает высоту в тайлах
func (w *World) Height() int { return w.grid.Height() }

// TileSize возвращает размер тайла в пикселях
func (w *World) TileSize() float64 { return w.tileSize }

// IsSolid сообщает, твёрд ли тайл (колонка, строка)
func (w *World) IsSolid(col, row int) bool { return w.grid.IsSolid(col, row) }

// Block возвращает содержимое тайла
func (w *World) Block(pos vec.Vec2) Block { return w.grid.Get(pos) }

// DropPhysics возвращает параметры физики предметов
func (w *World) DropPhysics() DropPhysics { return w.physics }

// SurfaceRow возвращает строку поверхности, вычисленную при генерации
func (w *World) SurfaceRow(col int) int {
	if col < 0 || col >= len(w.surface) {
		return 0
	}
	return w.surface[col]
}

// SetBlock записывает блок в обход инвентаря (для генераторов и сценариев).
// Сбрасывает добычу, если меняется её цель.
func (w *World) SetBlock(pos vec.Vec2, id block.BlockID) bool {
	if !w.grid.set(pos, id) {
		return false
	}
	if target, ok := w.mining.Target(); ok && target == pos {
		w.mining.Reset()
	}
	return true
}

// PlaceBlock ставит блок из инвентаря в пустой тайл.
// Занятый тайл, координата вне мира или пустой инвентарь: тихий отказ.
func (w *World) PlaceBlock(pos vec.Vec2, id block.BlockID, src BlockSource) bool {
	if !w.grid.IsEmpty(pos) || !block.IsValidBlockID(id) {
		return false
	}
	if !src.Take(id) {
		return false
	}

	w.grid.set(pos, id)
	w.emit(BlockEvent{EventType: EventTypeBlockPlace, Position: pos, Block: id})
	return true
}

// DamageBlock добавляет урон добычи к тайлу. Возвращает true, если тайл разрушен.
func (w *World) DamageBlock(pos vec.Vec2) bool {
	b := w.grid.Get(pos)
	if !w.grid.InBounds(pos) || b.IsEmpty() {
		return false
	}

	hardness := b.Properties().Hardness
	if hardness.IsIndestructible() {
		return false
	}

	if progress := w.mining.Add(pos, w.handRate); !hardness.Reached(progress) {
		return false
	}

	w.BreakBlock(pos)
	w.mining.Reset()
	return true
}

// ReleaseMining сбрасывает прогресс добычи без разрушения
func (w *World) ReleaseMining() {
	if target, ok := w.mining.Target(); ok {
		w.mining.Reset()
		w.emit(BlockEvent{EventType: EventTypeMiningReset, Position: target, Block: w.grid.Get(target).ID})
	}
}

// BreakBlock опустошает тайл и выбрасывает предмет, если у вида есть дроп
func (w *World) BreakBlock(pos vec.Vec2) bool {
	b := w.grid.Get(pos)
	if !w.grid.InBounds(pos) || b.IsEmpty() {
		return false
	}

	props := b.Properties()
	w.grid.set(pos, block.AirBlockID)
	if target, ok := w.mining.Target(); ok && target == pos {
		w.mining.Reset()
	}
	w.emit(BlockEvent{EventType: EventTypeBlockBreak, Position: pos, Block: b.ID})

	if props.HasDrop {
		drop := newItemDrop(props.Drop, pos.Center(w.tileSize), w.rng, w.physics)
		w.drops = append(w.drops, drop)
		w.emit(DropEvent{EventType: EventTypeDropSpawn, DropID: drop.ID, Kind: drop.Kind, Position: drop.Pos})
	}
	return true
}

// MiningTarget возвращает тайл, на котором копится урон
func (w *World) MiningTarget() (vec.Vec2, bool) {
	return w.mining.Target()
}

// MiningProgress возвращает накопленный урон тайла
func (w *World) MiningProgress(pos vec.Vec2) float64 {
	return w.mining.Progress(pos)
}

// DamageRatio возвращает долю урона к прочности (для оверлея трещин)
func (w *World) DamageRatio(pos vec.Vec2) float64 {
	progress := w.mining.Progress(pos)
	if progress == 0 {
		return 0
	}
	return w.grid.Get(pos).Properties().Hardness.Ratio(progress)
}

// DamageStage возвращает кадр оверлея трещин 0..9
func (w *World) DamageStage(pos vec.Vec2) int {
	stage := int(w.DamageRatio(pos) * 10)
	if stage > 9 {
		return 9
	}
	return stage
}

// UpdateItems двигает выпавшие предметы и отдаёт подобранные сборщику
func (w *World) UpdateItems(c Collector) {
	bottom := float64(w.grid.Height()) * w.tileSize

	kept := w.drops[:0]
	for _, d := range w.drops {
		d.Update(w.grid, w.tileSize, w.physics)

		if c != nil && c.CanPickup(d.Center()) {
			c.PickupItem(d.Kind)
			w.emit(DropEvent{EventType: EventTypeDropPickup, DropID: d.ID, Kind: d.Kind, Position: d.Pos})
			continue
		}
		if d.Pos.Y > bottom {
			w.emit(DropEvent{EventType: EventTypeDropLost, DropID: d.ID, Kind: d.Kind, Position: d.Pos})
			continue
		}
		kept = append(kept, d)
	}

	for i := len(kept); i < len(w.drops); i++ {
		w.drops[i] = nil
	}
	w.drops = kept
}

// Drops возвращает копии активных предметов
func (w *World) Drops() []ItemDrop {
	out := make([]ItemDrop, len(w.drops))
	for i, d := range w.drops {
		out[i] = *d
	}
	return out
}

// DropCount возвращает число активных предметов
func (w *World) DropCount() int {
	return len(w.drops)
}
