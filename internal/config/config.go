package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DataDir       string
	DBPath        string
	AudioDir      string
	StaticDir     string
	LogLevel      string
	EnableSwagger bool
	ProxyURL      string
	// ProxyTestURL is fetched through the proxy by GET /status?probe=1.
	ProxyTestURL string

	AI     AIConfig
	Speech SpeechConfig

	DefaultTargetLang  string
	AudioRetention     time.Duration
	AudioPruneInterval time.Duration
}

// AIConfig selects the translation provider. APIKey is empty when no credential is set.
type AIConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Endpoint string
}

type SpeechConfig struct {
	Strategy string
	Key      string
	Region   string
	Command  string
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding values already present in the environment. Missing files are
// ignored; files that exist but fail to parse are skipped and reported in the
// returned error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var errs []error
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			errs = append(errs, fmt.Errorf("load %s: %w", f, err))
		}
	}
	return errors.Join(errs...)
}

func Load() Config {
	dataDir := envOr("LINGUA_DATA_DIR", "data")

	dbPath := os.Getenv("LINGUA_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "lingua.db")
	}
	audioDir := os.Getenv("LINGUA_AUDIO_DIR")
	if audioDir == "" {
		audioDir = filepath.Join(dataDir, "audio")
	}
	staticDir := os.Getenv("LINGUA_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	apiKey := os.Getenv("LINGUA_AI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return Config{
		Addr:          envOr("LINGUA_ADDR", ":8080"),
		DataDir:       dataDir,
		DBPath:        filepath.Clean(dbPath),
		AudioDir:      filepath.Clean(audioDir),
		StaticDir:     filepath.Clean(staticDir),
		LogLevel:      envOr("LINGUA_LOG_LEVEL", "info"),
		EnableSwagger: envBool("LINGUA_ENABLE_SWAGGER", false),
		ProxyURL:      strings.TrimSpace(os.Getenv("LINGUA_PROXY_URL")),
		ProxyTestURL:  envOr("LINGUA_PROXY_TEST_URL", "https://www.gstatic.com/generate_204"),
		AI: AIConfig{
			Provider: strings.ToLower(envOr("LINGUA_AI_PROVIDER", "openai")),
			APIKey:   strings.TrimSpace(apiKey),
			BaseURL:  os.Getenv("LINGUA_AI_BASE_URL"),
			Model:    envOr("LINGUA_AI_MODEL", "gpt-3.5-turbo"),
			Endpoint: envOr("LINGUA_AI_ENDPOINT", "chat/completions"),
		},
		Speech: SpeechConfig{
			Strategy: strings.ToLower(envOr("LINGUA_TTS_STRATEGY", "azure")),
			Key:      strings.TrimSpace(os.Getenv("AZURE_SPEECH_KEY")),
			Region:   strings.TrimSpace(os.Getenv("AZURE_SPEECH_REGION")),
			Command:  envOr("LINGUA_TTS_COMMAND", "espeak-ng"),
		},
		DefaultTargetLang:  envOr("LINGUA_DEFAULT_TARGET_LANG", "en-US"),
		AudioRetention:     envDuration("LINGUA_AUDIO_RETENTION", 24*time.Hour),
		AudioPruneInterval: envDuration("LINGUA_AUDIO_PRUNE_INTERVAL", time.Hour),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func detectStaticDir() string {
	candidates := []string{
		"./static",
		"../static",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./static"
}
