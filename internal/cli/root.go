package cli

import (
	"io"
	"os"
	"time"

	"github.com/askewbot/askew-trainer/internal/expansion"
	"github.com/askewbot/askew-trainer/internal/intents"
	"github.com/askewbot/askew-trainer/internal/journal"
	"github.com/askewbot/askew-trainer/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DatasetStore loads and persists the intents dataset.
type DatasetStore interface {
	Load() (*intents.Dataset, error)
	Save(ds *intents.Dataset) (store.SaveResult, error)
	Path() string
}

// App holds the collaborators used by CLI commands.
type App struct {
	DatasetPath string
	BackupDir   string

	// NewStore builds the dataset store once flags are parsed. Nil uses store.New.
	NewStore func(path, backupDir string) DatasetStore

	// Expander is the generative path. Nil behaves as an unavailable provider.
	Expander expansion.APIExpander

	// Journal records saved runs. Nil disables the journal.
	Journal journal.Recorder

	Logger *zap.Logger

	// In is read for prompts. Nil means os.Stdin.
	In io.Reader

	// IsInteractive reports whether In is a terminal. Nil means it is not.
	IsInteractive func() bool

	// OutputIsTerminal reports whether stdout is a terminal. The spinner
	// only renders when both ends are. Nil means it is not.
	OutputIsTerminal func() bool

	Now func() time.Time
}

// NewRootCmd creates the top-level "askew-trainer" command.
func NewRootCmd(app *App) *cobra.Command {
	var opts trainOptions

	root := &cobra.Command{
		Use:   "askew-trainer",
		Short: "Expand Askew chatbot intents via Gemini or manual entry",
		Long: `Expands a question into intent patterns and responses using Gemini, falling back
to manual entry, previews the result and merges it into the intents dataset.
Every save backs up the previous dataset first.`,
		Example: `  askew-trainer --question "What are his skills?"
  askew-trainer -q "Tell me about Imagify" -t imagify --yes
  askew-trainer -q "What are his projects?" --manual`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(cmd, app, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.dataset, "dataset", app.DatasetPath, "Path to the intents dataset")
	root.PersistentFlags().StringVar(&opts.backupDir, "backup-dir", app.BackupDir, "Directory for dataset backups")

	root.Flags().StringVarP(&opts.question, "question", "q", "", "Question to expand")
	root.Flags().StringVarP(&opts.tag, "tag", "t", "", "Intent tag (prompted if omitted)")
	root.Flags().BoolVarP(&opts.manual, "manual", "m", false, "Manual entry mode; skips Gemini")
	root.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Auto-approve and save")
	_ = root.MarkFlagRequired("question")

	root.AddCommand(newHistoryCmd(app))

	return root
}

func (app *App) logger() *zap.Logger {
	if app.Logger == nil {
		return zap.NewNop()
	}
	return app.Logger
}

func (app *App) now() time.Time {
	if app.Now == nil {
		return time.Now()
	}
	return app.Now()
}

func (app *App) input() io.Reader {
	if app.In == nil {
		return os.Stdin
	}
	return app.In
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) showSpinner() bool {
	return app.interactive() && app.OutputIsTerminal != nil && app.OutputIsTerminal()
}

func (app *App) openStore(path, backupDir string) DatasetStore {
	if app.NewStore != nil {
		return app.NewStore(path, backupDir)
	}
	return store.New(path, backupDir)
}
