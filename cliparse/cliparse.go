package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DBMaxOpen    int

	// Image storage
	UploadDir      string
	ImageBackend   string
	MaxUploadBytes int64
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioPublicURL string
	MinioUseSSL    bool

	// Emotion analysis
	AnalyzerURL     string
	DetectorBackend string
	AnalyzeTimeout  time.Duration
	SadThreshold    float64

	// Presentation
	DefaultLang string
	Timezone    string

	LogLevel string
	LogFile  string
}

// Location resolves the configured display time zone.
// An empty or "Local" value means the server's local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is fine; real env vars still win over it
	_ = godotenv.Load()

	fs := flag.NewFlagSet("mood-diary", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	fs.StringVar(&cfg.UploadDir, "upload-dir", "", "Directory for uploaded images")
	fs.StringVar(&cfg.ImageBackend, "image-backend", "", "Image backend (local or minio)")
	fs.StringVar(&cfg.AnalyzerURL, "analyzer", "", "Emotion analysis service URL")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 5000)
		if err != nil {
			return Config{}, errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envString("DATABASE_TYPE", "sqlite")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	maxOpen, err := envInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil || maxOpen < 1 {
		return Config{}, errors.New("invalid DB_MAX_OPEN_CONNS env variable")
	}
	cfg.DBMaxOpen = maxOpen

	if cfg.UploadDir == "" {
		cfg.UploadDir = envString("UPLOAD_DIR", "static/uploads")
	}
	if cfg.ImageBackend == "" {
		cfg.ImageBackend = envString("IMAGE_BACKEND", "local")
	}
	switch cfg.ImageBackend {
	case "local":
	case "minio":
		cfg.MinioEndpoint = os.Getenv("MINIO_ENDPOINT")
		cfg.MinioAccessKey = os.Getenv("MINIO_ACCESS_KEY")
		cfg.MinioSecretKey = os.Getenv("MINIO_SECRET_KEY")
		cfg.MinioBucket = envString("MINIO_BUCKET", "mood-diary")
		cfg.MinioPublicURL = os.Getenv("MINIO_PUBLIC_URL")
		cfg.MinioUseSSL = os.Getenv("MINIO_USE_SSL") == "true"
		if cfg.MinioEndpoint == "" {
			return Config{}, errors.New("MINIO_ENDPOINT required for minio image backend")
		}
		if cfg.MinioPublicURL == "" {
			scheme := "http://"
			if cfg.MinioUseSSL {
				scheme = "https://"
			}
			cfg.MinioPublicURL = scheme + cfg.MinioEndpoint
		}
	default:
		return Config{}, errors.New("image backend must be local or minio")
	}

	maxUpload, err := envInt("MAX_UPLOAD_BYTES", 10<<20)
	if err != nil || maxUpload <= 0 {
		return Config{}, errors.New("invalid MAX_UPLOAD_BYTES env variable")
	}
	cfg.MaxUploadBytes = int64(maxUpload)

	if cfg.AnalyzerURL == "" {
		cfg.AnalyzerURL = envString("ANALYZER_URL", "http://localhost:5005")
	}
	cfg.DetectorBackend = envString("DETECTOR_BACKEND", "mtcnn")

	cfg.AnalyzeTimeout = 60 * time.Second
	if v := os.Getenv("ANALYZE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid ANALYZE_TIMEOUT env variable")
		}
		cfg.AnalyzeTimeout = d
	}

	cfg.SadThreshold = 0.25
	if v := os.Getenv("SAD_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			return Config{}, errors.New("SAD_THRESHOLD must be a fraction between 0 and 1")
		}
		cfg.SadThreshold = f
	}

	cfg.DefaultLang = envString("DEFAULT_LANG", "ko")
	cfg.Timezone = envString("TIMEZONE", "Local")
	if _, err := cfg.Location(); err != nil {
		return Config{}, errors.New("invalid TIMEZONE env variable")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = envString("LOG_LEVEL", "info")
	}
	cfg.LogFile = os.Getenv("LOG_FILE")

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
