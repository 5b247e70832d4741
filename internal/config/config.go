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
	HistoryDriverFile     = "file"
	HistoryDriverPostgres = "postgres"
	HistoryDriverSQLite   = "sqlite"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	History  History  `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	LLM      LLM      `mapstructure:",squash"`
	Session  Session  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type History struct {
	Driver      string `mapstructure:"history_driver"`
	File        string `mapstructure:"history_file"`
	RecentLimit int    `mapstructure:"history_recent_limit"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SQLite   string `mapstructure:"sqlite_path"`
}

type LLM struct {
	Provider        string  `mapstructure:"llm_provider"`
	Model           string  `mapstructure:"llm_model"`
	BaseURL         string  `mapstructure:"llm_base_url"`
	Temperature     float32 `mapstructure:"llm_temperature"`
	MaxOutputTokens int32   `mapstructure:"llm_max_output_tokens"`
}

type Session struct {
	TTL             time.Duration `mapstructure:"session_ttl"`
	CleanupInterval time.Duration `mapstructure:"session_cleanup_interval"`
	CleanupEnabled  bool          `mapstructure:"session_cleanup_enabled"`
	SecretKey       string        `mapstructure:"secret_key"`
	CookieSecure    bool          `mapstructure:"session_cookie_secure"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("HISTORY_DRIVER", HistoryDriverFile)
	viper.SetDefault("HISTORY_FILE", "historico_respostas.json")
	viper.SetDefault("HISTORY_RECENT_LIMIT", 5) // Mostrar apenas as 5 análises mais recentes

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_analysis?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("SQLITE_PATH", "historico.db")

	viper.SetDefault("LLM_PROVIDER", ProviderGemini)
	viper.SetDefault("LLM_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LLM_BASE_URL", "")
	viper.SetDefault("LLM_TEMPERATURE", 0.1)
	viper.SetDefault("LLM_MAX_OUTPUT_TOKENS", 8192)

	viper.SetDefault("SESSION_TTL", "2h")
	viper.SetDefault("SESSION_CLEANUP_INTERVAL", "5m")
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("SECRET_KEY", "your_secret_key") // ONLY LOCAL
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	c.History.Driver = strings.ToLower(strings.TrimSpace(c.History.Driver))
	switch c.History.Driver {
	case HistoryDriverFile, HistoryDriverPostgres, HistoryDriverSQLite:
	default:
		return fmt.Errorf("config: HISTORY_DRIVER inválido %q (use file, postgres ou sqlite)", c.History.Driver)
	}

	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("config: LLM_PROVIDER inválido %q (use gemini ou openai)", c.LLM.Provider)
	}

	if c.History.RecentLimit <= 0 {
		c.History.RecentLimit = 5
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Addr é o endereço de escuta do servidor HTTP
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
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
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
