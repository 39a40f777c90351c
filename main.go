package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/sealor/ai-copywriter/pkg/chat"
	"github.com/sealor/ai-copywriter/pkg/config"
	"github.com/sealor/ai-copywriter/pkg/generation"
	"github.com/sealor/ai-copywriter/pkg/persistence"
	"github.com/sealor/ai-copywriter/pkg/render"
	"github.com/sealor/ai-copywriter/pkg/web"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	apiURL := flag.String("api", "", "URL for the OpenAI-compatible API endpoint")
	model := flag.String("model", "", "Technical name of the LLM")
	historyDir := flag.String("history-dir", "", "Directory holding the chat history files")
	userMessage := flag.String("message", "", "Generate copy for this prompt and exit")
	serve := flag.Bool("serve", false, "Serve the web UI instead of the terminal prompt")
	listen := flag.String("listen", "", "Address for the web UI")
	activeLog := flag.Bool("log", false, "Log raw API traffic")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	cfg.ApplyEnv()
	if *apiURL != "" {
		cfg.BaseURL = *apiURL
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *historyDir != "" {
		cfg.HistoryDir = *historyDir
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *activeLog {
		cfg.Debug = true
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	logger := config.NewLogger(os.Stderr, level)

	store := openStore(cfg, logger)

	if *serve {
		if err := runServer(cfg, store, logger); err != nil {
			log.Fatalln("ERROR:", err)
		}
		return
	}

	askKey := func() (string, error) { return promptAPIKey(os.Stdin, os.Stderr) }
	if err := requireAPIKey(cfg, askKey); err != nil {
		log.Fatalln("ERROR:", err)
	}

	client := generation.New(cfg.Generation())
	logger.Debug("generation client ready", "model", client.Model())
	session := chat.NewSession(store, client, logger)

	if *userMessage != "" {
		turn, err := session.Submit(context.Background(), *userMessage)
		if err != nil {
			log.Fatalln("ERROR:", err)
		}
		render.Turn(os.Stdout, turn)
		return
	}

	if err := runTerminal(session); err != nil {
		log.Fatalln("ERROR:", err)
	}
}

// openStore keeps going with the degraded store Open returns when the
// history directory cannot be read, so the session still works and /clear
// still removes the unreadable files.
func openStore(cfg *config.Config, logger *slog.Logger) *persistence.Store {
	store, err := persistence.Open(cfg.HistoryDir, persistence.WithMaxPrompts(cfg.MaxPrompts))
	if err != nil {
		logger.Warn("history unavailable, continuing in memory", "dir", cfg.HistoryDir, "error", err)
		return store
	}
	logger.Debug("history loaded", "dir", cfg.HistoryDir, "turns", len(store.Turns()), "prompts", len(store.Prompts()))
	return store
}

// requireAPIKey asks for a key when none is configured. The whole config is
// validated again afterwards.
func requireAPIKey(cfg *config.Config, ask func() (string, error)) error {
	err := cfg.Validate()
	if !errors.Is(err, config.ErrMissingCredential) {
		return err
	}
	if cfg.APIKey, err = ask(); err != nil {
		return err
	}
	return cfg.Validate()
}

// promptAPIKey blocks until a non-empty key is typed. Input is not echoed.
func promptAPIKey(in *os.File, out io.Writer) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w and stdin is not a terminal", config.ErrMissingCredential)
	}

	for {
		fmt.Fprint(out, "Groq API key: ")
		key, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		if k := strings.TrimSpace(string(key)); k != "" {
			return k, nil
		}
	}
}

func runServer(cfg *config.Config, store *persistence.Store, logger *slog.Logger) error {
	connect := func(apiKey string) (chat.Generator, error) {
		genCfg := cfg.Generation()
		genCfg.APIKey = apiKey
		return generation.New(genCfg), nil
	}

	var opts []web.Option
	if err := cfg.Validate(); err == nil {
		opts = append(opts, web.WithGenerator(generation.New(cfg.Generation())))
	} else if !errors.Is(err, config.ErrMissingCredential) {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           web.NewServer(store, connect, logger, opts...).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("web UI listening", "addr", cfg.Listen)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
