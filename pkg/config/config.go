package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration. Loaded once at startup and
// never mutated afterwards.
type Config struct {
	Server   ServerConfig
	Hume     HumeConfig
	Assembly AssemblyAIConfig
	Groq     GroqConfig
	Analysis AnalysisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	MaxUploadMB     int      `envconfig:"MAX_UPLOAD_MB" default:"25"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// HumeConfig holds credentials for the Hume prosody engine
type HumeConfig struct {
	APIKey  string `envconfig:"HUME_API_KEY"`
	BaseURL string `envconfig:"HUME_API_URL" default:"https://api.hume.ai"`
}

// AssemblyAIConfig holds credentials for the speech recognition engine
type AssemblyAIConfig struct {
	APIKey string `envconfig:"ASSEMBLYAI_API_KEY"`
}

// GroqConfig holds credentials for the generative text engine
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
}

// AnalysisConfig holds pipeline policy knobs
type AnalysisConfig struct {
	Language        string   `envconfig:"SPEECH_LANGUAGE" default:"ru"`
	DominantTopK    int      `envconfig:"DOMINANT_TOP_K" default:"3"`
	FillerLexicon   []string `envconfig:"FILLER_LEXICON" default:"это,эм,ну,вот,типа,короче,как бы"`
	TempAudioDir    string   `envconfig:"TEMP_AUDIO_DIR" default:""`
	WorkspacePrefix string   `envconfig:"TEMP_AUDIO_PREFIX" default:"speech-coach"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields. Missing engine credentials are fatal
// at startup.
func (c *Config) Validate() error {
	if c.Hume.APIKey == "" {
		return fmt.Errorf("HUME_API_KEY is required")
	}
	if c.Assembly.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	if k := c.Analysis.DominantTopK; k != 1 && k != 3 {
		return fmt.Errorf("DOMINANT_TOP_K must be 1 or 3, got %d", k)
	}
	if len(c.Analysis.FillerLexicon) == 0 {
		return fmt.Errorf("FILLER_LEXICON must not be empty")
	}
	return nil
}
