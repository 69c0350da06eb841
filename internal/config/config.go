package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса, загружается из TOML-файла один раз при старте
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Data    DataConfig    `toml:"data"`
	Engine  EngineConfig  `toml:"engine"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DataConfig пути к исходным данным (выгрузки таблиц аудиторий и дисциплин)
type DataConfig struct {
	RoomsFile       string `toml:"rooms_file"`
	AllocationsFile string `toml:"allocations_file"`
}

// EngineConfig параметры недельной сетки занятости
type EngineConfig struct {
	DayStart    string `toml:"day_start"`
	DayEnd      string `toml:"day_end"`
	SlotMinutes int    `toml:"slot_minutes"`
}

// Load читает конфигурацию из TOML-файла, подставляет значения по
// умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "ct-room-allocation",
		},
		Engine: EngineConfig{
			DayStart:    domain.DefaultDayStart,
			DayEnd:      domain.DefaultDayEnd,
			SlotMinutes: domain.DefaultSlotMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Data.RoomsFile == "" || c.Data.AllocationsFile == "" {
		return fmt.Errorf("%w: data.rooms_file and data.allocations_file are required", ErrInvalidConfig)
	}
	if _, _, err := c.Engine.DayRange(); err != nil {
		return err
	}
	return nil
}

// DayRange разбирает границы дня недельной сетки
func (e EngineConfig) DayRange() (start, end types.TimeOfDay, err error) {
	start, err = types.ParseTimeOfDay(e.DayStart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: engine.day_start=%q", ErrInvalidConfig, e.DayStart)
	}
	end, err = types.ParseTimeOfDay(e.DayEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: engine.day_end=%q", ErrInvalidConfig, e.DayEnd)
	}
	if !start.Before(end) {
		return 0, 0, fmt.Errorf("%w: engine day range %s-%s", ErrInvalidConfig, e.DayStart, e.DayEnd)
	}
	if e.SlotMinutes <= 0 {
		return 0, 0, fmt.Errorf("%w: engine.slot_minutes=%d", ErrInvalidConfig, e.SlotMinutes)
	}
	return start, end, nil
}
