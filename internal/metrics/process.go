package metrics

import (
	"context"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/annel0/tile-sandbox/internal/logging"
)

// ProcessSampler периодически снимает CPU и RSS текущего процесса
type ProcessSampler struct {
	proc *process.Process
	cpu  prometheus.Gauge
	rss  prometheus.Gauge
}

// NewProcessSampler создаёт сэмплер для текущего процесса и регистрирует его gauge-метрики
func NewProcessSampler(reg prometheus.Registerer) (*ProcessSampler, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}

	s := &ProcessSampler{
		proc: proc,
		cpu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_percent",
			Help:      "Загрузка CPU процессом симуляции, проценты.",
		}),
		rss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Резидентная память процесса симуляции.",
		}),
	}
	reg.MustRegister(s.cpu, s.rss)
	return s, nil
}

// Sample снимает значения один раз
func (s *ProcessSampler) Sample() error {
	cpuPercent, err := s.proc.CPUPercent()
	if err != nil {
		return err
	}
	mem, err := s.proc.MemoryInfo()
	if err != nil {
		return err
	}

	s.cpu.Set(cpuPercent)
	s.rss.Set(float64(mem.RSS))
	return nil
}

// Run снимает значения с интервалом до отмены контекста
func (s *ProcessSampler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Sample(); err != nil {
				logging.GetMetricsLogger().Warn("Не удалось снять статистику процесса: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
