package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Telegram       Telegram       `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Ops            Ops            `mapstructure:",squash"`
	SessionCleanup SessionCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Telegram struct {
	Token                string `mapstructure:"telegram_bot_token"`
	UpdateTimeoutSeconds int    `mapstructure:"telegram_update_timeout_seconds"`
	Debug                bool   `mapstructure:"telegram_debug"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Ops struct {
	Host string `mapstructure:"ops_host"`
	Port string `mapstructure:"ops_port"`
}

type SessionCleanup struct {
	CronSchedule string        `mapstructure:"session_cleanup_cron"`
	IdleTTL      time.Duration `mapstructure:"session_idle_ttl"`
	Enabled      bool          `mapstructure:"session_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("TELEGRAM_BOT_TOKEN", "your_bot_token") // ONLY LOCAL
	viper.SetDefault("TELEGRAM_UPDATE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("TELEGRAM_DEBUG", false)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/kpi")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OPS_HOST", "localhost")
	viper.SetDefault("OPS_PORT", "8000")

	// Defaults para a limpeza de sessões ociosas
	viper.SetDefault("SESSION_CLEANUP_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("SESSION_IDLE_TTL", "24h")
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
