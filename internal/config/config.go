package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	StorageDriverS3    = "s3"
	StorageDriverLocal = "local"

	ValidationStrict  = "strict"
	ValidationLenient = "lenient"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Qdrant    QdrantConfig
	Analysis  AnalysisConfig
	Functions FunctionsConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StorageConfig struct {
	Driver         string
	UploadPath     string
	MaxFileSize    int64
	S3Endpoint     string
	S3AccessKeyID  string
	S3SecretKey    string
	S3UseSSL       bool
	DocumentBucket string
	VideoBucket    string
}

type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	TranscriptionModel string
	ChatModel          string
	Timeout            time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

// AnalysisConfig selects the language-model providers for each workflow and how
// strictly the video analysis payload is checked before it is stored.
type AnalysisConfig struct {
	VideoProvider    string
	DocumentProvider string
	Validation       string
}

type FunctionsConfig struct {
	URL    string
	APIKey string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Env:          getEnv("ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "5m"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "candidate_screening"),
		},
		Storage: StorageConfig{
			Driver:         strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverS3)),
			UploadPath:     getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 104857600),
			S3Endpoint:     getEnv("S3_ENDPOINT", "localhost:9000"),
			S3AccessKeyID:  getEnv("S3_ACCESS_KEY_ID", ""),
			S3SecretKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
			S3UseSSL:       getEnvAsBool("S3_USE_SSL", false),
			DocumentBucket: getEnv("STORAGE_DOCUMENT_BUCKET", "job-documents"),
			VideoBucket:    getEnv("STORAGE_VIDEO_BUCKET", "application-videos"),
		},
		OpenAI: OpenAIConfig{
			APIKey:             getEnv("OPENAI_API_KEY", ""),
			BaseURL:            getEnv("OPENAI_BASE_URL", ""),
			TranscriptionModel: getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
			ChatModel:          getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			Timeout:            getEnvAsDuration("OPENAI_TIMEOUT", "3m"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "application_transcripts"),
		},
		Analysis: AnalysisConfig{
			VideoProvider:    strings.ToLower(getEnv("ANALYSIS_LLM_PROVIDER", ProviderOpenAI)),
			DocumentProvider: strings.ToLower(getEnv("DOCUMENT_LLM_PROVIDER", ProviderGemini)),
			Validation:       strings.ToLower(getEnv("ANALYSIS_VALIDATION", ValidationStrict)),
		},
		Functions: FunctionsConfig{
			URL:    getEnv("FUNCTIONS_URL", "http://localhost:3000/functions/v1"),
			APIKey: getEnv("FUNCTIONS_API_KEY", ""),
		},
	}
}

// Validate checks that every credential required by the selected providers and
// storage driver is present.
func (c *Config) Validate() error {
	for _, provider := range []string{c.Analysis.VideoProvider, c.Analysis.DocumentProvider} {
		switch provider {
		case ProviderOpenAI:
			if c.OpenAI.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is required for the %s provider", provider)
			}
		case ProviderGemini:
			if c.Gemini.APIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY is required for the %s provider", provider)
			}
		default:
			return fmt.Errorf("unknown language model provider: %q", provider)
		}
	}

	// Transcription always goes through OpenAI.
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for transcription")
	}

	switch c.Storage.Driver {
	case StorageDriverS3:
		if c.Storage.S3AccessKeyID == "" || c.Storage.S3SecretKey == "" {
			return fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required for the s3 storage driver")
		}
	case StorageDriverLocal:
		if c.Storage.UploadPath == "" {
			return fmt.Errorf("UPLOAD_PATH is required for the local storage driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	if c.Analysis.Validation != ValidationStrict && c.Analysis.Validation != ValidationLenient {
		return fmt.Errorf("ANALYSIS_VALIDATION must be %q or %q", ValidationStrict, ValidationLenient)
	}

	return nil
}

// IndexingEnabled reports whether transcripts should be pushed to Qdrant.
func (c *Config) IndexingEnabled() bool {
	return c.Qdrant.URL != "" && c.Gemini.APIKey != ""
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
