package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/tile-sandbox/internal/world"
)

const namespace = "sandbox"

// Recorder переводит события мира и длительность тиков в Prometheus-метрики.
// Регистрируется в переданном Registerer, чтобы тесты могли использовать собственный реестр.
type Recorder struct {
	placed       *prometheus.CounterVec
	broken       *prometheus.CounterVec
	picked       *prometheus.CounterVec
	spawned      prometheus.Counter
	lost         prometheus.Counter
	miningResets prometheus.Counter
	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	activeDrops  prometheus.Gauge
}

// NewRecorder создаёт метрики и регистрирует их в reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		placed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_placed_total",
			Help:      "Блоков поставлено из инвентаря.",
		}, []string{"kind"}),
		broken: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_broken_total",
			Help:      "Блоков разрушено.",
		}, []string{"kind"}),
		picked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drops_picked_total",
			Help:      "Предметов подобрано игроком.",
		}, []string{"kind"}),
		spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drops_spawned_total",
			Help:      "Предметов выпало из разрушенных блоков.",
		}),
		lost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drops_lost_total",
			Help:      "Предметов, упавших за нижнюю границу мира.",
		}),
		miningResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mining_resets_total",
			Help:      "Сбросов прогресса добычи без разрушения.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Выполнено тиков симуляции.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика симуляции.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		activeDrops: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "drops_active",
			Help:      "Предметов в мире на конец тика.",
		}),
	}

	reg.MustRegister(r.placed, r.broken, r.picked, r.spawned, r.lost,
		r.miningResets, r.ticks, r.tickDuration, r.activeDrops)
	return r
}

// HandleEvent учитывает событие мира; подходит как world.Listener
func (r *Recorder) HandleEvent(ev world.Event) {
	switch e := ev.(type) {
	case world.BlockEvent:
		switch e.EventType {
		case world.EventTypeBlockPlace:
			r.placed.WithLabelValues(e.Block.String()).Inc()
		case world.EventTypeBlockBreak:
			r.broken.WithLabelValues(e.Block.String()).Inc()
		case world.EventTypeMiningReset:
			r.miningResets.Inc()
		}
	case world.DropEvent:
		switch e.EventType {
		case world.EventTypeDropSpawn:
			r.spawned.Inc()
		case world.EventTypeDropPickup:
			r.picked.WithLabelValues(e.Kind.String()).Inc()
		case world.EventTypeDropLost:
			r.lost.Inc()
		}
	}
}

// ObserveTick учитывает завершённый тик
func (r *Recorder) ObserveTick(d time.Duration, activeDrops int) {
	r.ticks.Inc()
	r.tickDuration.Observe(d.Seconds())
	r.activeDrops.Set(float64(activeDrops))
}
