package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Server struct {
	Addr string
}

type Verse struct {
	BaseURL     string
	Translation string
}

type LLM struct {
	Backend string

	OpenAIBaseURL string
	OpenAIModel   string

	RouterBaseURL string
	RouterModels  []string
	RouterReferer string
	RouterTitle   string

	LocalURL   string
	LocalModel string
	LocalEcho  bool

	// Temperature is nil when unset; zero disables sampling.
	Temperature *float32
	TopP        float32
	MaxTokens   int
}

type TTS struct {
	Engine string
	Lang   string

	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	ElevenLabsModelID string
}

type Config struct {
	Server      Server
	Verse       Verse
	LLM         LLM
	TTS         TTS
	HTTPTimeout time.Duration
}

// Load reads an optional .env file and then the environment. Missing
// variables fall back to defaults.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, falling back to environment variables", envFile)
	}

	var c Config
	var err error

	c.Server.Addr = getEnv("ADDR", ":3000")
	c.Verse.BaseURL = getEnv("VERSE_API_URL", "https://bible-api.com")
	c.Verse.Translation = getEnv("VERSE_TRANSLATION", "")

	c.LLM.Backend = strings.ToLower(getEnv("LLM_BACKEND", "openai"))
	c.LLM.OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "")
	c.LLM.OpenAIModel = getEnv("OPENAI_MODEL", "gpt-3.5-turbo")
	c.LLM.RouterBaseURL = getEnv("ROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	c.LLM.RouterModels = splitList(getEnv("ROUTER_MODELS", ""))
	c.LLM.RouterReferer = getEnv("ROUTER_REFERER", "")
	c.LLM.RouterTitle = getEnv("ROUTER_TITLE", "Bible Verse Explainer")
	c.LLM.LocalURL = getEnv("LOCAL_LLM_URL", "http://127.0.0.1:8080/v1")
	c.LLM.LocalModel = getEnv("LOCAL_LLM_MODEL", "mistralai/Mistral-7B-Instruct-v0.1")
	if c.LLM.LocalEcho, err = getBool("LOCAL_LLM_ECHO", false); err != nil {
		return c, err
	}
	if c.LLM.Temperature, err = getOptionalFloat32("LLM_TEMPERATURE"); err != nil {
		return c, err
	}
	if c.LLM.TopP, err = getFloat32("LLM_TOP_P"); err != nil {
		return c, err
	}
	if c.LLM.MaxTokens, err = getInt("LLM_MAX_TOKENS"); err != nil {
		return c, err
	}

	c.TTS.Engine = strings.ToLower(getEnv("TTS_ENGINE", "google"))
	c.TTS.Lang = getEnv("TTS_LANG", "en")
	c.TTS.ElevenLabsAPIKey = getEnv("ELEVEN_LABS_API_KEY", "")
	c.TTS.ElevenLabsVoiceID = getEnv("ELEVEN_LABS_VOICE_ID", "JBFqnCBsd6RMkjVDRZzb")
	c.TTS.ElevenLabsModelID = getEnv("ELEVEN_LABS_MODEL_ID", "eleven_multilingual_v2")

	if v := getEnv("HTTP_TIMEOUT", ""); v != "" {
		if c.HTTPTimeout, err = time.ParseDuration(v); err != nil {
			return c, errors.Wrap(err, "HTTP_TIMEOUT")
		}
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.LLM.Backend {
	case "local", "openai", "openrouter":
	default:
		return errors.Errorf("LLM_BACKEND must be local, openai or openrouter, got %q", c.LLM.Backend)
	}
	switch c.TTS.Engine {
	case "google":
	case "elevenlabs":
		if c.TTS.ElevenLabsAPIKey == "" {
			return errors.New("ELEVEN_LABS_API_KEY must be set when TTS_ENGINE=elevenlabs")
		}
	default:
		return errors.Errorf("TTS_ENGINE must be google or elevenlabs, got %q", c.TTS.Engine)
	}
	if c.LLM.MaxTokens < 0 {
		return errors.New("LLM_MAX_TOKENS must not be negative")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	return b, errors.Wrap(err, key)
}

func getFloat32(key string) (float32, error) {
	v := getEnv(key, "")
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	return float32(f), errors.Wrap(err, key)
}

// getOptionalFloat32 tells an unset variable (nil) apart from an explicit 0.
func getOptionalFloat32(key string) (*float32, error) {
	v := getEnv(key, "")
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	out := float32(f)
	return &out, nil
}

func getInt(key string) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	return n, errors.Wrap(err, key)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
