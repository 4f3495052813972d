package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/annel0/tile-sandbox/internal/config"
	"github.com/annel0/tile-sandbox/internal/logging"
	"github.com/annel0/tile-sandbox/internal/metrics"
	"github.com/annel0/tile-sandbox/internal/world"
	"github.com/annel0/tile-sandbox/internal/world/block"
	"github.com/annel0/tile-sandbox/internal/world/entity"
)

const playerID = 1

// Simulation владеет миром и игроком и продвигает их фиксированными тиками.
// Не потокобезопасна: Step и Snapshot вызываются из одного цикла.
type Simulation struct {
	world    *world.World
	player   *entity.Player
	tick     uint64
	tickRate int
	maxTicks int
	recorder *metrics.Recorder
	logger   *logging.Logger
}

// New генерирует мир по конфигурации и ставит игрока на поверхность в центре мира
func New(ctx context.Context, cfg *config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, err := world.NewWorld(ctx, cfg.WorldOptions())
	if err != nil {
		return nil, fmt.Errorf("создание мира: %w", err)
	}

	playerCfg := cfg.PlayerOptions()
	col := w.Width() / 2
	spawn := entity.SpawnAbove(col, w.SurfaceRow(col), w.TileSize(), playerCfg)

	s := NewWithWorld(w, entity.NewPlayer(playerID, spawn, playerCfg))
	s.tickRate = cfg.Sim.TickRate
	s.maxTicks = cfg.Sim.MaxTicks
	s.logger.Info("Игрок появился в (%.0f, %.0f)", spawn.X, spawn.Y)
	return s, nil
}

// NewWithWorld собирает симуляцию из готовых мира и игрока (сценарии, тесты).
// Тики не ограничены по частоте и количеству.
func NewWithWorld(w *world.World, player *entity.Player) *Simulation {
	return &Simulation{
		world:  w,
		player: player,
		logger: logging.GetSimLogger(),
	}
}

// AttachRecorder подписывает метрики на события мира и длительность тиков
func (s *Simulation) AttachRecorder(r *metrics.Recorder) {
	s.recorder = r
	s.world.Subscribe(r.HandleEvent)
}

// World возвращает мир
func (s *Simulation) World() *world.World { return s.world }

// Player возвращает игрока
func (s *Simulation) Player() *entity.Player { return s.player }

// Tick возвращает число выполненных тиков
func (s *Simulation) Tick() uint64 { return s.tick }

// SetLimits задаёт частоту тиков (0: без задержки) и их предельное число (0: без ограничения)
func (s *Simulation) SetLimits(tickRate, maxTicks int) {
	s.tickRate = tickRate
	s.maxTicks = maxTicks
}

// Step выполняет один тик. Порядок: выбор слота, добыча, установка блока,
// прыжок и движение игрока, затем предметы и подбор.
func (s *Simulation) Step(in Intents) {
	start := time.Now()

	if in.SelectSlot != nil {
		s.player.SelectSlot(*in.SelectSlot)
	}
	if in.CycleSlot != 0 {
		s.player.CycleSlot(in.CycleSlot)
	}

	if in.MineReleased {
		s.world.ReleaseMining()
	}
	if in.Mine != nil {
		s.world.DamageBlock(*in.Mine)
	}

	if in.Place != nil {
		kind := in.Place.Kind
		if kind == block.AirBlockID {
			kind = s.player.SelectedKind()
		}
		s.world.PlaceBlock(in.Place.Pos, kind, s.player)
	}

	if in.Jump {
		s.player.Jump()
	}
	s.player.Move(in.Move, s.world)
	s.player.Update(s.world)

	s.world.UpdateItems(s.player)

	s.tick++
	if s.recorder != nil {
		s.recorder.ObserveTick(time.Since(start), s.world.DropCount())
	}
}
