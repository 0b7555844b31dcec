package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is built once by the process entry point and passed into every
// component constructor; no package holds client or key state of its own.
type Config struct {
	GeminiAPIKey string `yaml:"gemini_api_key" validate:"required"`
	FluxSpaceURL string `yaml:"flux_space_url" validate:"required,url"`
	ScriptModel  string `yaml:"script_model" validate:"required"`
	SpeechModel  string `yaml:"speech_model" validate:"required"`
	PlannerModel string `yaml:"planner_model" validate:"required"`
	ImageModel   string `yaml:"image_model" validate:"required"`
	Port         string `yaml:"port"`
}

func defaults() Config {
	return Config{
		FluxSpaceURL: "https://black-forest-labs-flux-1-schnell.hf.space",
		ScriptModel:  "gemini-2.5-flash",
		SpeechModel:  "gemini-2.5-flash-preview-tts",
		PlannerModel: "gemini-2.5-flash",
		ImageModel:   "gemini-2.5-flash-image-preview",
		Port:         "8080",
	}
}

// Load resolves configuration in order: defaults, optional YAML file named
// by PROMOREEL_CONFIG, then environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("PROMOREEL_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setIfPresent(&cfg.GeminiAPIKey, "GEMINI_API_KEY")
	setIfPresent(&cfg.FluxSpaceURL, "FLUX_SPACE_URL")
	setIfPresent(&cfg.ScriptModel, "SCRIPT_MODEL")
	setIfPresent(&cfg.SpeechModel, "SPEECH_MODEL")
	setIfPresent(&cfg.PlannerModel, "PLANNER_MODEL")
	setIfPresent(&cfg.ImageModel, "IMAGE_MODEL")
	setIfPresent(&cfg.Port, "PORT")
}

func setIfPresent(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
