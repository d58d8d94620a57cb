package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds the settings of both the API service and the web client service.
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Web         WebConfig
	RabbitMQ    RabbitMQConfig
	Metrics     MetricsConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// WebConfig configures the web client service; APIBaseURL is where it finds the API service.
type WebConfig struct {
	Port       string
	APIBaseURL string
	APITimeout time.Duration
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

type MetricsConfig struct {
	ServiceName string
}

// Load loads configuration from environment variables, reading .env first when present
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "nis_inventory"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Web: WebConfig{
			Port:       getEnv("WEB_PORT", "8081"),
			APIBaseURL: getEnv("WEB_API_BASE_URL", "http://localhost:8080"),
			APITimeout: getEnvAsDuration("WEB_API_TIMEOUT", 10*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getEnvAsBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvAsInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Metrics: MetricsConfig{
			ServiceName: getEnv("METRICS_SERVICE_NAME", "nis-inventory"),
		},
	}
}

// GetDSN returns the MySQL DSN. clientFoundRows makes UPDATE report matched
// rows, which the product update relies on to detect a vanished row.
func (c *Config) GetDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.Database.User
	mc.Passwd = c.Database.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	mc.DBName = c.Database.Name
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.ClientFoundRows = true
	mc.MultiStatements = true
	return mc.FormatDSN()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
