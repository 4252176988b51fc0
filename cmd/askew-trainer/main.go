package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/askewbot/askew-trainer/internal/cli"
	"github.com/askewbot/askew-trainer/internal/expansion"
	"github.com/askewbot/askew-trainer/internal/journal"
	"github.com/askewbot/askew-trainer/internal/llm"
	"github.com/askewbot/askew-trainer/internal/logging"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: reading .env: %v\n", err)
	}

	logger, closeLog := logging.New(logging.LoadConfig())
	defer closeLog()

	app := &cli.App{
		DatasetPath: envOr("ASKEW_TRAINER_DATASET", "intents.json"),
		BackupDir:   envOr("ASKEW_TRAINER_BACKUP_DIR", "intents_backups"),
		Logger:      logger,
	}

	app.IsInteractive = func() bool { return isTerminal(os.Stdin) }
	app.OutputIsTerminal = func() bool { return isTerminal(os.Stdout) }

	jpath, err := journalPath()
	if err != nil {
		logger.Warn("journal unavailable; runs will not be recorded", zap.Error(err))
	}
	if jpath != "" {
		runs := journal.NewLazyJournal(jpath)
		defer runs.Close()
		app.Journal = runs
	}

	// The API key is resolved per call, so a missing key surfaces as a
	// manual fallback rather than a startup failure.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	client := llm.NewGeminiClient(llmCfg, observer)
	app.Expander = expansion.NewProvider(client, expansion.KnowledgeContext, logger)

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// journalPath resolves the run journal location. It returns "" when the
// journal is switched off.
func journalPath() (string, error) {
	path := os.Getenv("ASKEW_TRAINER_JOURNAL")
	if strings.EqualFold(path, "off") {
		return "", nil
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".askew", "trainer.db")
	}
	return path, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
