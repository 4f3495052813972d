package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/annel0/tile-sandbox/internal/util"
	"github.com/annel0/tile-sandbox/internal/world"
	"github.com/annel0/tile-sandbox/internal/world/entity"
)

// ErrInvalidConfig возвращается Validate при недопустимых значениях
var ErrInvalidConfig = errors.New("config: invalid value")

// Config корневая структура конфигурации песочницы.
// Любая секция может отсутствовать в YAML: остаются значения Default().
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Player    PlayerConfig    `yaml:"player"`
	Items     ItemsConfig     `yaml:"items"`
	Mining    MiningConfig    `yaml:"mining"`
	Sim       SimConfig       `yaml:"sim"`
	Server    ServerConfig    `yaml:"server"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type WorldConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
	Seed     int64   `yaml:"seed"`
}

type TerrainConfig struct {
	Octaves      int     `yaml:"octaves"`
	Persistence  float64 `yaml:"persistence"`
	Lacunarity   float64 `yaml:"lacunarity"`
	Scale        float64 `yaml:"scale"`
	Amplitude    float64 `yaml:"amplitude"`
	BaseFraction float64 `yaml:"base_fraction"`
	SandChance   float64 `yaml:"sand_chance"`
	TreeChance   float64 `yaml:"tree_chance"`
}

type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	PickupRadius     float64 `yaml:"pickup_radius"`
}

type ItemsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	Friction       float64 `yaml:"friction"`
	SpawnVelocityY float64 `yaml:"spawn_velocity_y"`
	MaxSpawnSpeedX float64 `yaml:"max_spawn_speed_x"`
	BobbingSpeed   float64 `yaml:"bobbing_speed"`
}

type MiningConfig struct {
	HandRate float64 `yaml:"hand_rate"`
}

type SimConfig struct {
	TickRate int `yaml:"tick_rate"` // Тиков в секунду; 0: без задержки
	MaxTicks int `yaml:"max_ticks"` // 0: до отмены контекста
}

type ServerConfig struct {
	MetricsPort int `yaml:"metrics_port"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	Endpoint    string `yaml:"endpoint"` // host:port OTLP/HTTP; пусто: localhost:4318
	Insecure    bool   `yaml:"insecure"`
}

type LoggingConfig struct {
	Dir       string `yaml:"dir"`
	Level     string `yaml:"level"`
	FileLevel string `yaml:"file_level"`
	JSON      bool   `yaml:"json"`
}

// Default возвращает конфигурацию по умолчанию: мир 100×100, тайл 32px, 60 тиков в секунду
func Default() *Config {
	const tileSize = 32.0
	terrain := world.DefaultTerrainParams()
	drops := world.DefaultDropPhysics(tileSize)
	player := entity.DefaultPlayerConfig(tileSize)

	return &Config{
		World: WorldConfig{Width: 100, Height: 100, TileSize: tileSize},
		Terrain: TerrainConfig{
			Octaves:      terrain.Noise.Octaves,
			Persistence:  terrain.Noise.Persistence,
			Lacunarity:   terrain.Noise.Lacunarity,
			Scale:        terrain.Noise.Scale,
			Amplitude:    terrain.Amplitude,
			BaseFraction: terrain.BaseFraction,
			SandChance:   terrain.SandChance,
			TreeChance:   terrain.TreeChance,
		},
		Player: PlayerConfig{
			Speed:            player.Speed,
			Gravity:          player.Gravity,
			TerminalVelocity: player.TerminalVelocity,
			JumpImpulse:      player.JumpImpulse,
			PickupRadius:     player.PickupRadius,
		},
		Items: ItemsConfig{
			Gravity:        drops.Gravity,
			Friction:       drops.Friction,
			SpawnVelocityY: drops.SpawnVelocityY,
			MaxSpawnSpeedX: drops.MaxSpawnSpeedX,
			BobbingSpeed:   drops.BobbingSpeed,
		},
		Mining:    MiningConfig{HandRate: 0.5},
		Sim:       SimConfig{TickRate: 60},
		Telemetry: TelemetryConfig{ServiceName: "tile-sandbox"},
		Logging:   LoggingConfig{Level: "info", FileLevel: "debug"},
	}
}

// GetMetricsPort возвращает порт Prometheus метрик с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "SANDBOX_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации поверх Default().
// Если path == "", пытается прочитать путь из ENV SANDBOX_CONFIG; если и он пуст: возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SANDBOX_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет размеры мира и физические параметры
func (c *Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %dx%d", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.World.TileSize <= 0:
		return fmt.Errorf("%w: tile_size %v", ErrInvalidConfig, c.World.TileSize)
	case c.Mining.HandRate <= 0:
		return fmt.Errorf("%w: mining.hand_rate %v", ErrInvalidConfig, c.Mining.HandRate)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed %v", ErrInvalidConfig, c.Player.Speed)
	case c.Player.TerminalVelocity <= 0:
		return fmt.Errorf("%w: player.terminal_velocity %v", ErrInvalidConfig, c.Player.TerminalVelocity)
	case c.Player.PickupRadius <= 0:
		return fmt.Errorf("%w: player.pickup_radius %v", ErrInvalidConfig, c.Player.PickupRadius)
	case c.Items.Friction < 0 || c.Items.Friction > 1:
		return fmt.Errorf("%w: items.friction %v", ErrInvalidConfig, c.Items.Friction)
	case c.Terrain.SandChance < 0 || c.Terrain.SandChance > 1:
		return fmt.Errorf("%w: terrain.sand_chance %v", ErrInvalidConfig, c.Terrain.SandChance)
	case c.Terrain.TreeChance < 0 || c.Terrain.TreeChance > 1:
		return fmt.Errorf("%w: terrain.tree_chance %v", ErrInvalidConfig, c.Terrain.TreeChance)
	case c.Sim.TickRate < 0 || c.Sim.MaxTicks < 0:
		return fmt.Errorf("%w: sim tick_rate=%d max_ticks=%d", ErrInvalidConfig, c.Sim.TickRate, c.Sim.MaxTicks)
	}
	return nil
}

// WorldOptions собирает параметры мира
func (c *Config) WorldOptions() world.Options {
	terrain := world.DefaultTerrainParams()
	terrain.Noise = util.NoiseParams{
		Octaves:     c.Terrain.Octaves,
		Persistence: c.Terrain.Persistence,
		Lacunarity:  c.Terrain.Lacunarity,
		Scale:       c.Terrain.Scale,
	}
	terrain.Amplitude = c.Terrain.Amplitude
	terrain.BaseFraction = c.Terrain.BaseFraction
	terrain.SandChance = c.Terrain.SandChance
	terrain.TreeChance = c.Terrain.TreeChance

	drops := world.DefaultDropPhysics(c.World.TileSize)
	drops.Gravity = c.Items.Gravity
	drops.Friction = c.Items.Friction
	drops.SpawnVelocityY = c.Items.SpawnVelocityY
	drops.MaxSpawnSpeedX = c.Items.MaxSpawnSpeedX
	drops.BobbingSpeed = c.Items.BobbingSpeed

	return world.Options{
		Width:          c.World.Width,
		Height:         c.World.Height,
		TileSize:       c.World.TileSize,
		Seed:           c.World.Seed,
		HandMiningRate: c.Mining.HandRate,
		Terrain:        terrain,
		Drops:          drops,
	}
}

// PlayerOptions собирает физические параметры игрока; тело всегда 1×2 тайла
func (c *Config) PlayerOptions() entity.PlayerConfig {
	p := entity.DefaultPlayerConfig(c.World.TileSize)
	p.Speed = c.Player.Speed
	p.Gravity = c.Player.Gravity
	p.TerminalVelocity = c.Player.TerminalVelocity
	p.JumpImpulse = c.Player.JumpImpulse
	p.PickupRadius = c.Player.PickupRadius
	return p
}
