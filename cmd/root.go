package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Mystique1337/bible-explainer/config"
	"github.com/Mystique1337/bible-explainer/llm"
	"github.com/Mystique1337/bible-explainer/pipeline"
	"github.com/Mystique1337/bible-explainer/server"
	"github.com/Mystique1337/bible-explainer/tts"
	"github.com/Mystique1337/bible-explainer/verse"
)

var (
	envFile   string
	addr      string
	accessLog bool
)

var rootCmd = &cobra.Command{
	Use:   "bible-explainer",
	Short: "Serve the Bible verse explainer web app",
	Long: `Looks up a Bible verse, explains it with a language model and reads the
explanation aloud. Backends are chosen with LLM_BACKEND and TTS_ENGINE.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return serve(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env", ".env", "Path to an optional .env file")
	rootCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides ADDR)")
	rootCmd.Flags().BoolVar(&accessLog, "access-log", true, "Log every HTTP request")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	orch, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}

	app := server.New(server.Dependencies{Orchestrator: orch, AccessLog: accessLog})

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Bible explainer listening on %s (llm=%s, tts=%s)", cfg.Server.Addr, cfg.LLM.Backend, cfg.TTS.Engine)
		errCh <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server")
	case <-ctx.Done():
	}

	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

// buildOrchestrator wires the configured verse source, explanation backend
// and speech engine.
func buildOrchestrator(ctx context.Context, cfg config.Config) (*pipeline.Orchestrator, error) {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var local *llm.LocalModel
	if cfg.LLM.Backend == llm.BackendLocal {
		m, err := llm.LoadLocalModel(ctx, llm.LocalConfig{
			BaseURL:    cfg.LLM.LocalURL,
			Model:      cfg.LLM.LocalModel,
			Echo:       cfg.LLM.LocalEcho,
			HTTPClient: httpClient,
		})
		if err != nil {
			// keep serving; each request reports the backend as unavailable
			log.Printf("⚠️  Local model not loaded: %v", err)
		}
		local = m
	}

	provider, err := llm.New(llm.Config{
		Backend:       cfg.LLM.Backend,
		OpenAIBaseURL: cfg.LLM.OpenAIBaseURL,
		OpenAIModel:   cfg.LLM.OpenAIModel,
		RouterBaseURL: cfg.LLM.RouterBaseURL,
		RouterModels:  cfg.LLM.RouterModels,
		RouterReferer: cfg.LLM.RouterReferer,
		RouterTitle:   cfg.LLM.RouterTitle,
		Sampling: llm.Sampling{
			Temperature: cfg.LLM.Temperature,
			TopP:        cfg.LLM.TopP,
			MaxTokens:   cfg.LLM.MaxTokens,
		},
		HTTPClient: httpClient,
	}, local)
	if err != nil {
		return nil, err
	}

	synth, err := tts.New(tts.Config{
		Engine:            cfg.TTS.Engine,
		Lang:              cfg.TTS.Lang,
		ElevenLabsAPIKey:  cfg.TTS.ElevenLabsAPIKey,
		ElevenLabsVoiceID: cfg.TTS.ElevenLabsVoiceID,
		ElevenLabsModelID: cfg.TTS.ElevenLabsModelID,
		HTTPClient:        httpClient,
	})
	if err != nil {
		return nil, err
	}

	fetcher := verse.NewClient(cfg.Verse.BaseURL, cfg.Verse.Translation, httpClient)
	return pipeline.NewOrchestrator(fetcher, provider, synth), nil
}
