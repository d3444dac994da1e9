package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes de dados de vendas suportadas
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Source       Source       `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Classifier   Classifier   `mapstructure:",squash"`
	ReportExport ReportExport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Source struct {
	Kind       string `mapstructure:"sales_source"`
	FilePath   string `mapstructure:"sales_file_path"`
	Sheet      string `mapstructure:"sales_sheet"`
	Table      string `mapstructure:"sales_table"`
	SQLitePath string `mapstructure:"sales_sqlite_path"`
}

type Dashboard struct {
	Title         string `mapstructure:"dashboard_title"`
	TopItemsLimit int    `mapstructure:"top_items_limit"`
}

type Classifier struct {
	TestSize   float64 `mapstructure:"classifier_test_size"`
	SplitSeed  uint64  `mapstructure:"classifier_split_seed"`
	Trees      int     `mapstructure:"classifier_trees"`
	ForestSeed uint64  `mapstructure:"classifier_forest_seed"`
}

type ReportExport struct {
	CronSchedule string `mapstructure:"report_export_cron"`
	OutputPath   string `mapstructure:"report_export_path"`
	Enabled      bool   `mapstructure:"report_export_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bakery?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SALES_SOURCE", SourceFile)
	viper.SetDefault("SALES_FILE_PATH", "clean_bakery_data.xlsx")
	viper.SetDefault("SALES_SHEET", "") // Vazio usa a primeira planilha
	viper.SetDefault("SALES_TABLE", "sales_records")
	viper.SetDefault("SALES_SQLITE_PATH", "bakery.db")

	viper.SetDefault("DASHBOARD_TITLE", "Fluffy Bakes - Business Analytics Dashboard")
	viper.SetDefault("TOP_ITEMS_LIMIT", 5)

	viper.SetDefault("CLASSIFIER_TEST_SIZE", 0.2)
	viper.SetDefault("CLASSIFIER_SPLIT_SEED", 42)
	viper.SetDefault("CLASSIFIER_TREES", 100)
	viper.SetDefault("CLASSIFIER_FOREST_SEED", 42)

	// Defaults para a exportação agendada do painel
	viper.SetDefault("REPORT_EXPORT_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("REPORT_EXPORT_PATH", "report.html")
	viper.SetDefault("REPORT_EXPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
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

// Validate verifica os valores que o pipeline não consegue corrigir sozinho
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceFile, SourcePostgres, SourceSQLite:
	default:
		return fmt.Errorf("config: SALES_SOURCE inválido: %q (aceitos: file, postgres, sqlite)", c.Source.Kind)
	}

	if c.Dashboard.TopItemsLimit <= 0 {
		return fmt.Errorf("config: TOP_ITEMS_LIMIT deve ser positivo, recebido %d", c.Dashboard.TopItemsLimit)
	}

	if c.Classifier.TestSize <= 0 || c.Classifier.TestSize >= 1 {
		return fmt.Errorf("config: CLASSIFIER_TEST_SIZE deve estar entre 0 e 1, recebido %v", c.Classifier.TestSize)
	}

	if c.Classifier.Trees <= 0 {
		return fmt.Errorf("config: CLASSIFIER_TREES deve ser positivo, recebido %d", c.Classifier.Trees)
	}

	return nil
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
