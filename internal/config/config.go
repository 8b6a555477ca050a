package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Worker     WorkerConfig
	Simulation SimulationConfig
	Tracing    TracingConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SimulationCacheTTL time.Duration
	HeatmapCacheTTL    time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	BatchSize         int
}

// SimulationConfig - константы модели распространения, которые задаёт оператор
type SimulationConfig struct {
	GridResolution    int
	MaxGridResolution int
	OverlapFactor     float64
	MountHeightM      float64
	// ReceiverHeightM - высота приёмника над полом; для этажей не выше неё берётся середина этажа
	ReceiverHeightM         float64
	InterFloorAttenuationDb float64
	VerticalSlicePercent    float64
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Exporter    string // stdout | otlp
	Endpoint    string
	SampleRatio float64
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путём к env-файлу
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !stderrors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// .env не обязателен, остаются переменные окружения и значения по умолчанию
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("API_CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SimulationCacheTTL: time.Duration(v.GetInt("SIMULATION_CACHE_TTL")) * time.Second,
			HeatmapCacheTTL:    time.Duration(v.GetInt("HEATMAP_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
		},
		Simulation: SimulationConfig{
			GridResolution:          v.GetInt("SIMULATION_GRID_RESOLUTION"),
			MaxGridResolution:       v.GetInt("SIMULATION_MAX_GRID_RESOLUTION"),
			OverlapFactor:           v.GetFloat64("SIMULATION_OVERLAP_FACTOR"),
			MountHeightM:            v.GetFloat64("SIMULATION_AP_MOUNT_HEIGHT"),
			ReceiverHeightM:         v.GetFloat64("SIMULATION_RECEIVER_HEIGHT"),
			InterFloorAttenuationDb: v.GetFloat64("SIMULATION_INTER_FLOOR_ATTENUATION"),
			VerticalSlicePercent:    v.GetFloat64("SIMULATION_VERTICAL_SLICE_PERCENT"),
		},
		Tracing: TracingConfig{
			Enabled:     v.GetBool("TRACING_ENABLED"),
			ServiceName: v.GetString("TRACING_SERVICE_NAME"),
			Exporter:    strings.ToLower(v.GetString("TRACING_EXPORTER")),
			Endpoint:    v.GetString("TRACING_OTLP_ENDPOINT"),
			SampleRatio: v.GetFloat64("TRACING_SAMPLE_RATIO"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DB_ENABLED", false)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("SIMULATION_CACHE_TTL", 3600)
	v.SetDefault("HEATMAP_CACHE_TTL", 3600)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("WORKER_CONSUMER_GROUP", "coverage-simulation-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_BATCH_SIZE", 10)

	v.SetDefault("SIMULATION_GRID_RESOLUTION", 50)
	v.SetDefault("SIMULATION_MAX_GRID_RESOLUTION", 200)
	v.SetDefault("SIMULATION_OVERLAP_FACTOR", 0.8)
	v.SetDefault("SIMULATION_AP_MOUNT_HEIGHT", 2.7)
	v.SetDefault("SIMULATION_RECEIVER_HEIGHT", 1.0)
	v.SetDefault("SIMULATION_INTER_FLOOR_ATTENUATION", 15.0)
	v.SetDefault("SIMULATION_VERTICAL_SLICE_PERCENT", 50.0)

	v.SetDefault("TRACING_SERVICE_NAME", "coverage-planner")
	v.SetDefault("TRACING_EXPORTER", "stdout")
	v.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
}

func (c *Config) validate() error {
	s := c.Simulation
	if s.GridResolution < 1 || s.GridResolution > s.MaxGridResolution {
		return fmt.Errorf("SIMULATION_GRID_RESOLUTION must be in [1, %d], got %d", s.MaxGridResolution, s.GridResolution)
	}
	if s.OverlapFactor <= 0 || s.OverlapFactor > 1 {
		return fmt.Errorf("SIMULATION_OVERLAP_FACTOR must be in (0, 1], got %v", s.OverlapFactor)
	}
	if s.MountHeightM < 0 || s.ReceiverHeightM < 0 || s.InterFloorAttenuationDb < 0 {
		return fmt.Errorf("simulation heights and inter-floor attenuation must be non-negative")
	}
	if s.VerticalSlicePercent < 0 || s.VerticalSlicePercent > 100 {
		return fmt.Errorf("SIMULATION_VERTICAL_SLICE_PERCENT must be in [0, 100], got %v", s.VerticalSlicePercent)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO must be in [0, 1], got %v", c.Tracing.SampleRatio)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

// DSN - строка подключения в формате key=value для pgx
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
