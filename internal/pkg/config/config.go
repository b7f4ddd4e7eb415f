package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultBrokerPublishTimeout = 2 * time.Second
	defaultChannelTokenTTL      = time.Hour
)

type (
	Tasks struct {
		MissionStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Broker struct {
		APIBase        string
		APIKey         string
		PublishTimeout time.Duration
	}

	ChannelToken struct {
		PrivateKeyPath string
		HMACSecret     string
		TTL            time.Duration
	}

	Auth struct {
		AccessSecret string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		DriverLocation DriverLocation
	}

	DriverLocation struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Broker       Broker
		ChannelToken ChannelToken
		Auth         Auth
		Kafka        Kafka
	}
)

// Load читает конфигурацию HTTP сервиса.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker читает конфигурацию kafka воркера: база, брокер и kafka, без HTTP и токенов.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateWorkerConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase нужен мигратору.
func LoadDatabase() (*Database, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg.Database, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_MISSION_STATS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	driverLocationTimeout, err := osGetEnvDuration("KAFKA_HANDLER_DRIVER_LOCATION_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	publishTimeout, err := osGetEnvDuration("BROKER_PUBLISH_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if publishTimeout == 0 {
		publishTimeout = defaultBrokerPublishTimeout
	}

	tokenTTL, err := osGetSeconds("CHANNEL_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if tokenTTL == 0 {
		tokenTTL = defaultChannelTokenTTL
	}

	return &Config{
		Tasks: Tasks{
			MissionStatsInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Broker: Broker{
			APIBase:        os.Getenv("BROKER_API_BASE"),
			APIKey:         os.Getenv("BROKER_API_KEY"),
			PublishTimeout: publishTimeout,
		},
		ChannelToken: ChannelToken{
			PrivateKeyPath: os.Getenv("CHANNEL_TOKEN_PRIVATE_KEY_PATH"),
			HMACSecret:     os.Getenv("CHANNEL_TOKEN_HMAC_SECRET"),
			TTL:            tokenTTL,
		},
		Auth: Auth{
			AccessSecret: os.Getenv("AUTH_ACCESS_SECRET"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				DriverLocation: DriverLocation{
					ProcessTimeout: driverLocationTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}
	if err := validateBroker(&cfg.Broker); err != nil {
		return err
	}

	// ключ для подписи токенов каналов: RSA файл или HMAC секрет, хотя бы одно
	if cfg.ChannelToken.PrivateKeyPath == "" && cfg.ChannelToken.HMACSecret == "" {
		return errors.New("CHANNEL_TOKEN_PRIVATE_KEY_PATH or CHANNEL_TOKEN_HMAC_SECRET is required")
	}
	if cfg.ChannelToken.TTL < 0 {
		return errors.New("CHANNEL_TOKEN_TTL must be positive")
	}

	if cfg.Auth.AccessSecret == "" {
		return errors.New("AUTH_ACCESS_SECRET is required")
	}

	if cfg.Tasks.MissionStatsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_MISSION_STATS_INTERVAL is required")
	}

	return nil
}

func validateWorkerConfig(cfg *Config) error {
	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}
	if err := validateBroker(&cfg.Broker); err != nil {
		return err
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.DriverLocation.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DRIVER_LOCATION_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateBroker(b *Broker) error {
	if b.APIBase == "" {
		return errors.New("BROKER_API_BASE is required")
	}
	if b.APIKey == "" {
		return errors.New("BROKER_API_KEY is required")
	}
	if b.PublishTimeout < 0 {
		return errors.New("BROKER_PUBLISH_TIMEOUT must be positive")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetSeconds принимает и "3600", и "1h".
func osGetSeconds(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	if seconds, err := strconv.Atoi(val); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid seconds format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
