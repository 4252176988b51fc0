package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/askewbot/askew-trainer/internal/cli/formatter"
	"github.com/askewbot/askew-trainer/internal/expansion"
	"github.com/askewbot/askew-trainer/internal/intents"
	"github.com/askewbot/askew-trainer/internal/journal"
	"github.com/askewbot/askew-trainer/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type trainOptions struct {
	dataset   string
	backupDir string
	question  string
	tag       string
	manual    bool
	yes       bool
}

var errManualForced = errors.New("manual mode forced")

// runTrain drives one invocation: load, resolve tag, expand, preview,
// confirm, then merge and save.
func runTrain(cmd *cobra.Command, app *App, opts trainOptions) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()
	log := app.logger()

	st := app.openStore(opts.dataset, opts.backupDir)
	ds, err := st.Load()
	if err != nil {
		return err
	}
	log.Debug("dataset loaded", zap.String("path", st.Path()), zap.Int("intents", len(ds.Intents)))

	con := newConsole(app, out)
	question := strings.TrimSpace(opts.question)
	tag := strings.TrimSpace(opts.tag)
	if tag == "" {
		tag = con.askTag()
	}
	if tag == "" {
		fmt.Fprintln(out, formatter.Warn("Tag is required. Exiting."))
		return nil
	}

	exp, source := app.expand(ctx, con, out, question, tag, opts.manual)

	fmt.Fprint(out, formatter.FormatPreview(exp))
	if !opts.yes && !con.confirmSave(filepath.Base(st.Path())) {
		fmt.Fprintln(out, formatter.Aborted("Aborted."))
		return nil
	}

	res := intents.Merge(ds, tag, exp)
	fmt.Fprintln(out, formatter.FormatMergeResult(res))

	saved, err := st.Save(ds)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatSaved(saved.Path, saved.BackupPath))

	app.recordRun(ctx, question, source, res, saved)

	fmt.Fprintln(out, formatter.Done("Done! Push your repo to update Askew on Vercel."))
	return nil
}

// expand tries the API path unless manual is set. Any API failure is
// reported and answered with manual entry.
func (app *App) expand(ctx context.Context, con *console, out io.Writer, question, tag string, manual bool) (intents.Expansion, journal.Source) {
	err := errManualForced
	if !manual {
		var exp intents.Expansion
		exp, err = app.expandViaAPI(ctx, out, question, tag)
		if err == nil {
			return exp, journal.SourceAPI
		}
	}

	app.logger().Info("using manual entry", zap.String("tag", tag), zap.Error(err))
	fmt.Fprintln(out, formatter.Warn(fmt.Sprintf("Gemini expansion failed (%v). Switching to manual input.", err)))
	fmt.Fprintln(out)
	return expansion.ExpandManually(con, out), journal.SourceManual
}

func (app *App) expandViaAPI(ctx context.Context, out io.Writer, question, tag string) (intents.Expansion, error) {
	if app.Expander == nil {
		return intents.Expansion{}, fmt.Errorf("%w: no provider configured", expansion.ErrProviderUnavailable)
	}

	fmt.Fprintln(out, formatter.Info(fmt.Sprintf("Expanding '%s' via Gemini...", question)))

	var exp intents.Expansion
	work := func() error {
		var err error
		exp, err = app.Expander.ExpandViaAPI(ctx, question, tag)
		return err
	}
	if !app.showSpinner() {
		return exp, work()
	}
	if err := runWithSpinner(out, "Waiting for Gemini", work); err != nil {
		return intents.Expansion{}, err
	}
	return exp, nil
}

func (app *App) recordRun(ctx context.Context, question string, source journal.Source, res intents.MergeResult, saved store.SaveResult) {
	if app.Journal == nil {
		return
	}
	run := &journal.Run{
		Question:       question,
		Tag:            res.Tag,
		Source:         source,
		PatternsAdded:  res.PatternsAdded,
		ResponsesAdded: res.ResponsesAdded,
		CreatedTag:     res.Created,
		DatasetPath:    saved.Path,
		BackupPath:     saved.BackupPath,
		CreatedAt:      app.now().UTC(),
	}
	if err := app.Journal.Record(ctx, run); err != nil {
		app.logger().Warn("recording run in journal", zap.Error(err))
	}
}
