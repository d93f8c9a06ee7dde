package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Log struct {
		Level string
	}

	Tasks struct {
		OutboxRelayInterval time.Duration
		OutboxBatchSize     int
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
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
	}

	Redis struct {
		Addr       string
		Password   string
		DB         int
		SessionTTL time.Duration
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
		StatusNotification StatusNotification
	}

	StatusNotification struct {
		ProcessTimeout time.Duration
	}

	Auth struct {
		JWTSecret string
	}

	Telegram struct {
		BotToken string // пустой токен отключает отправку
		APIURL   string
		Timeout  time.Duration
	}

	Invoice struct {
		Seller       Seller
		FontPath     string
		FontBoldPath string
	}

	Seller struct {
		Name                 string
		INN                  string
		Address              string
		Account              string
		BIK                  string
		CorrespondentAccount string
		Bank                 string
		Director             string
	}

	Config struct {
		Log      Log
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Kafka    Kafka
		Auth     Auth
		Telegram Telegram
		Invoice  Invoice
	}
)

const (
	defaultTelegramAPIURL  = "https://api.telegram.org"
	defaultTelegramTimeout = 10 * time.Second
	defaultSessionTTL      = 24 * time.Hour
	defaultOutboxBatchSize = 100
)

// LoadLog читает уровень логирования до полной загрузки конфига,
// чтобы логгер был готов раньше остальных зависимостей.
func LoadLog() Log {
	return Log{Level: os.Getenv("LOG_LEVEL")}
}

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

// LoadWorker конфиг воркера уведомлений: ему не нужны http сервер, redis и реквизиты.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateKafka(cfg.Kafka); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	outboxInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxBatchSize, err := osGetInt("BACKGROUND_OUTBOX_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if outboxBatchSize == 0 {
		outboxBatchSize = defaultOutboxBatchSize
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusNotificationTimeout, err := osGetEnvDuration("KAFKA_HANDLER_STATUS_NOTIFICATION_PROCESS_TIMEOUT")
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

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionTTL, err := osGetEnvDuration("REDIS_SESSION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if sessionTTL == 0 {
		sessionTTL = defaultSessionTTL
	}

	telegramTimeout, err := osGetEnvDuration("TELEGRAM_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if telegramTimeout == 0 {
		telegramTimeout = defaultTelegramTimeout
	}

	telegramAPIURL := os.Getenv("TELEGRAM_API_URL")
	if telegramAPIURL == "" {
		telegramAPIURL = defaultTelegramAPIURL
	}

	return &Config{
		Log: LoadLog(),
		Tasks: Tasks{
			OutboxRelayInterval: outboxInterval,
			OutboxBatchSize:     outboxBatchSize,
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
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
		},
		Redis: Redis{
			Addr:       os.Getenv("REDIS_ADDR"),
			Password:   os.Getenv("REDIS_PASSWORD"),
			DB:         redisDB,
			SessionTTL: sessionTTL,
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
				StatusNotification: StatusNotification{
					ProcessTimeout: statusNotificationTimeout,
				},
			},
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		},
		Telegram: Telegram{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
			APIURL:   telegramAPIURL,
			Timeout:  telegramTimeout,
		},
		Invoice: Invoice{
			Seller: Seller{
				Name:                 os.Getenv("INVOICE_SELLER_NAME"),
				INN:                  os.Getenv("INVOICE_SELLER_INN"),
				Address:              os.Getenv("INVOICE_SELLER_ADDRESS"),
				Account:              os.Getenv("INVOICE_SELLER_ACCOUNT"),
				BIK:                  os.Getenv("INVOICE_SELLER_BIK"),
				CorrespondentAccount: os.Getenv("INVOICE_SELLER_CORRESPONDENT_ACCOUNT"),
				Bank:                 os.Getenv("INVOICE_SELLER_BANK"),
				Director:             os.Getenv("INVOICE_SELLER_DIRECTOR"),
			},
			FontPath:     os.Getenv("INVOICE_FONT_PATH"),
			FontBoldPath: os.Getenv("INVOICE_FONT_BOLD_PATH"),
		},
	}, nil
}

// BrokerList разбирает KAFKA_BROKERS вида "host1:9092, host2:9092".
func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
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

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Invoice.Seller.Name == "" {
		return errors.New("INVOICE_SELLER_NAME is required")
	}
	if cfg.Invoice.FontPath == "" {
		return errors.New("INVOICE_FONT_PATH is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func validateKafka(cfg Kafka) error {
	if cfg.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Handlers.StatusNotification.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_STATUS_NOTIFICATION_PROCESS_TIMEOUT is required")
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
