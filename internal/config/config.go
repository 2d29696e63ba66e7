package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	MongoURL       string `env:"MONGODB_URL,required"`
	DatabaseName   string `env:"DATABASE_NAME" envDefault:"llm_eval"`
	CollectionName string `env:"COLLECTION_NAME" envDefault:"evaluations"`
	AppName        string `env:"APP_NAME" envDefault:"LLM Evaluation API"`
	AppVersion     string `env:"APP_VERSION" envDefault:"1.0.0"`
	LLMAPIKey      string `env:"LLM_API_KEY"`
	LLMBaseURL     string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel       string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`

	SubmitRateWindowMinutes int `env:"SUBMIT_RATE_WINDOW_MINUTES" envDefault:"10"`
	SubmitRateMax           int `env:"SUBMIT_RATE_MAX" envDefault:"30"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
