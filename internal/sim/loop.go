package sim

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/annel0/tile-sandbox/internal/sim"

// IntentSource выдаёт намерения на следующий тик.
// false означает, что источник исчерпан и цикл должен завершиться.
type IntentSource interface {
	Next(snap *Snapshot) (Intents, bool)
}

// IntentSourceFunc позволяет использовать функцию как IntentSource
type IntentSourceFunc func(snap *Snapshot) (Intents, bool)

// Next вызывает f
func (f IntentSourceFunc) Next(snap *Snapshot) (Intents, bool) {
	return f(snap)
}

// FrameSink получает снимок после каждого тика
type FrameSink interface {
	Frame(snap *Snapshot)
}

// FrameSinkFunc позволяет использовать функцию как FrameSink
type FrameSinkFunc func(snap *Snapshot)

// Frame вызывает f
func (f FrameSinkFunc) Frame(snap *Snapshot) {
	f(snap)
}

// Run выполняет тики с частотой tickRate до отмены контекста, исчерпания источника
// или достижения maxTicks. sink может быть nil.
// При отмене контекста возвращает ctx.Err().
func (s *Simulation) Run(ctx context.Context, src IntentSource, sink FrameSink) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "sim.run",
		trace.WithAttributes(
			attribute.Int("sim.tick_rate", s.tickRate),
			attribute.Int("sim.max_ticks", s.maxTicks),
		),
	)
	defer span.End()

	var tickC <-chan time.Time
	if s.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	started := s.tick
	defer func() {
		span.SetAttributes(attribute.Int64("sim.ticks", int64(s.tick-started)))
		s.logger.Info("Цикл симуляции остановлен после %d тиков", s.tick-started)
	}()

	snap := s.Snapshot()
	for {
		if s.maxTicks > 0 && s.tick-started >= uint64(s.maxTicks) {
			return nil
		}

		if tickC != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		in, ok := src.Next(snap)
		if !ok {
			return nil
		}
		s.Step(in)

		snap = s.Snapshot()
		if sink != nil {
			sink.Frame(snap)
		}
	}
}
