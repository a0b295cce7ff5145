package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	// URLs padrão do backend de ICP por modo de build
	DefaultLocalICPAPIURL  = "http://localhost:8000/api"
	DefaultHostedICPAPIURL = "https://sales-dashboard-backend.onrender.com/api"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	ICPBackend   ICPBackend   `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Drafts       Drafts       `mapstructure:",squash"`
	DraftCleanup DraftCleanup `mapstructure:",squash"`
	Enrichment   Enrichment   `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Auth guarda o segredo compartilhado com o provedor de sessão
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ICPBackend struct {
	URL     string        `mapstructure:"icp_api_url"`
	Timeout time.Duration `mapstructure:"icp_api_timeout"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type Drafts struct {
	TTL time.Duration `mapstructure:"settings_draft_ttl"`
}

type DraftCleanup struct {
	CronSchedule string        `mapstructure:"draft_cleanup_cron"`
	MaxIdle      time.Duration `mapstructure:"draft_cleanup_max_idle"`
	Enabled      bool          `mapstructure:"draft_cleanup_enabled"`
}

type Enrichment struct {
	MaxUploadMB int64 `mapstructure:"enrichment_max_upload_mb"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", EnvDevelopment)
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	// Vazio: resolvido pelo modo de build em ResolveICPAPIURL
	viper.SetDefault("ICP_API_URL", "")
	viper.SetDefault("ICP_API_TIMEOUT", "30s")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SETTINGS_DRAFT_TTL", "2h")

	viper.SetDefault("DRAFT_CLEANUP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DRAFT_CLEANUP_MAX_IDLE", "2h")
	viper.SetDefault("DRAFT_CLEANUP_ENABLED", true)

	viper.SetDefault("ENRICHMENT_MAX_UPLOAD_MB", 10)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.ICPBackend.URL = ResolveICPAPIURL(config.ICPBackend.URL, config.App.Env)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ResolveICPAPIURL usa a URL configurada ou cai no padrão do modo de build
func ResolveICPAPIURL(configured, env string) string {
	if url := strings.TrimSpace(configured); url != "" {
		return strings.TrimRight(url, "/")
	}

	if IsProduction(env) {
		return DefaultHostedICPAPIURL
	}

	return DefaultLocalICPAPIURL
}

func IsProduction(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == EnvProduction || env == "prod"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
