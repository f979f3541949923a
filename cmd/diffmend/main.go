package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fwojciec/diffmend"
	"github.com/fwojciec/diffmend/bubbletea"
	"github.com/fwojciec/diffmend/chroma"
	"github.com/fwojciec/diffmend/clipboard"
	"github.com/fwojciec/diffmend/config"
	"github.com/fwojciec/diffmend/fs"
	"github.com/fwojciec/diffmend/git"
	"github.com/fwojciec/diffmend/jsonl"
	"github.com/fwojciec/diffmend/lipgloss"
	"github.com/fwojciec/diffmend/logger"
	"github.com/fwojciec/diffmend/setdiff"
	"github.com/fwojciec/diffmend/structmerge"
	"github.com/fwojciec/diffmend/unified"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidSelection is returned when --select names lines that cannot be restored.
var ErrInvalidSelection = errors.New("invalid selection")

// Reviewer runs the interactive review screen.
type Reviewer interface {
	Review(ctx context.Context, in bubbletea.ReviewInput) (*bubbletea.Outcome, error)
}

// App encapsulates the application logic for testing.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	Reader    diffmend.DocumentReader
	Writer    diffmend.DocumentWriter
	Differ    diffmend.Differ
	Merger    diffmend.Merger
	Previewer diffmend.Previewer
	Formatter diffmend.ReportFormatter
	History   diffmend.HistoryStore
	Clipboard diffmend.Clipboard
	Reviewer  Reviewer
	Logger    logger.Logger

	Marker      diffmend.HeadingMarker
	Output      bubbletea.OutputTarget // Defaults for written documents
	HistoryPath string                 // Empty disables history
	Now         func() time.Time
}

// NewApp wires the production collaborators from cfg.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	theme, err := lipgloss.ThemeByName(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}
	marker := cfg.HeadingMarker()
	differ := setdiff.NewDiffer()
	files := fs.NewReader(
		fs.WithExtensions(cfg.Input.Extensions),
		fs.WithFormatDetector(chroma.NewDetector()),
	)

	app := &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Reader: git.NewReader(git.NewRunner("."), files, files),
		Writer: fs.NewWriter(cfg.Output.Extensions),
		Differ: differ,
		Merger: structmerge.NewMerger(
			structmerge.WithHeadingMarker(marker),
			structmerge.WithOverflow(cfg.OverflowBlock()),
			structmerge.WithDiffer(differ),
		),
		Previewer: unified.NewPreviewer(),
		Formatter: &diffmend.DefaultFormatter{Marker: marker},
		History:   jsonl.NewStore(),
		Clipboard: clipboard.NewSystem(),
		Reviewer: bubbletea.NewReviewer(
			bubbletea.WithModelOptions(bubbletea.WithTheme(theme)),
		),
		Logger: log,
		Marker: marker,
		Output: bubbletea.OutputTarget{
			Dir:  cfg.Output.Dir,
			Name: cfg.Output.Name,
			Ext:  cfg.Output.Extension,
		},
		Now: time.Now,
	}
	if cfg.History.Enabled {
		app.HistoryPath = cfg.HistoryPath()
	}
	return app, nil
}

// Load reads both documents concurrently.
func (a *App) Load(ctx context.Context, basePath, modifiedPath string) (base, modified *diffmend.Source, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if base, err = a.Reader.Read(ctx, basePath); err != nil {
			return fmt.Errorf("base %s: %w", basePath, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if modified, err = a.Reader.Read(ctx, modifiedPath); err != nil {
			return fmt.Errorf("modified %s: %w", modifiedPath, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	a.Logger.Debug("documents loaded",
		"base", base.Path, "base_format", base.Format,
		"modified", modified.Path, "modified_format", modified.Format)
	return base, modified, nil
}

// Compare prints the comparison report, or the comparison as JSON.
func (a *App) Compare(ctx context.Context, basePath, modifiedPath string, asJSON bool) error {
	base, modified, err := a.Load(ctx, basePath, modifiedPath)
	if err != nil {
		return err
	}
	baseDoc := base.Lines()
	cmp := a.Differ.Compute(baseDoc, modified.Lines())

	if asJSON {
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cmp)
	}
	_, err = io.WriteString(a.Stdout, a.Formatter.Format(baseDoc, cmp))
	return err
}

// MergeOptions controls a non-interactive merge.
type MergeOptions struct {
	BasePath     string
	ModifiedPath string
	IDs          []int
	All          bool // Restore every candidate; IDs is ignored
	Stdout       bool // Print the merged document instead of writing it
	Copy         bool // Also copy the merged document to the clipboard
	Preview      bool // Print the inserted lines to stderr
	Output       bubbletea.OutputTarget
}

// Merge restores the selected lines and delivers the merged document.
func (a *App) Merge(ctx context.Context, opts MergeOptions) (*diffmend.MergeResult, error) {
	base, modified, err := a.Load(ctx, opts.BasePath, opts.ModifiedPath)
	if err != nil {
		return nil, err
	}
	baseDoc, modDoc := base.Lines(), modified.Lines()
	cmp := a.Differ.Compute(baseDoc, modDoc)

	var sel diffmend.Selection
	if opts.All {
		sel.SelectAll(cmp.Candidates)
	} else {
		sel = diffmend.NewSelection(opts.IDs...)
	}
	if sel.Len() == 0 {
		return nil, diffmend.ErrNothingToMerge
	}
	if verrs := diffmend.ValidateSelection(baseDoc, cmp, sel); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i, e := range verrs {
			errs[i] = e
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, errors.Join(errs...))
	}

	result, err := a.Merger.Merge(baseDoc, modDoc, sel)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("merge completed", "restored", result.Restored(), "orphans", result.Orphans())

	if opts.Preview {
		p, err := a.Previewer.Preview(modDoc, result.Document)
		if err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
		writePreview(a.Stderr, p)
	}

	text := diffmend.JoinLines(result.Document)
	var outPath string
	if opts.Stdout {
		if _, err := io.WriteString(a.Stdout, text); err != nil {
			return nil, err
		}
	} else {
		target := a.target(opts.Output)
		if outPath, err = a.Writer.Write(target.Dir, target.Name, target.Ext, text); err != nil {
			return nil, err
		}
		fmt.Fprintf(a.Stdout, "wrote %s (%d restored, %d appended)\n", outPath, result.Restored(), result.Orphans())
	}
	if opts.Copy {
		if err := a.Clipboard.Copy(text); err != nil {
			return nil, fmt.Errorf("copy: %w", err)
		}
	}

	a.record(diffmend.MergeRecord{
		BasePath:     base.Path,
		ModifiedPath: modified.Path,
		OutputPath:   outPath,
		Selected:     sel.IDs(),
		Restored:     result.Restored(),
		Orphans:      result.Orphans(),
		Stats:        cmp.Stats,
	})
	return result, nil
}

// Review opens the interactive review screen.
func (a *App) Review(ctx context.Context, basePath, modifiedPath string) error {
	base, modified, err := a.Load(ctx, basePath, modifiedPath)
	if err != nil {
		return err
	}
	baseDoc, modDoc := base.Lines(), modified.Lines()
	cmp := a.Differ.Compute(baseDoc, modDoc)
	if len(cmp.Candidates) == 0 {
		_, err := io.WriteString(a.Stdout, "no missing lines\n")
		return err
	}

	outcome, err := a.Reviewer.Review(ctx, bubbletea.ReviewInput{
		Base:       baseDoc,
		Modified:   modDoc,
		Comparison: cmp,
		Marker:     a.Marker,
		Merger:     a.Merger,
		Previewer:  a.Previewer,
		Writer:     a.Writer,
		Output:     a.Output,
		Clipboard:  a.Clipboard,
	})
	if err != nil {
		return err
	}
	if outcome.Result == nil {
		return nil
	}
	if outcome.SavedPath != "" {
		fmt.Fprintf(a.Stdout, "wrote %s\n", outcome.SavedPath)
	}
	a.record(diffmend.MergeRecord{
		BasePath:     base.Path,
		ModifiedPath: modified.Path,
		OutputPath:   outcome.SavedPath,
		Selected:     outcome.Selection.IDs(),
		Restored:     outcome.Result.Restored(),
		Orphans:      outcome.Result.Orphans(),
		Stats:        cmp.Stats,
	})
	return nil
}

// ShowHistory prints the most recent merges, oldest first. A limit of zero
// prints everything.
func (a *App) ShowHistory(limit int) error {
	if a.HistoryPath == "" {
		_, err := io.WriteString(a.Stdout, "history is disabled\n")
		return err
	}
	records, err := a.History.Load(a.HistoryPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		_, err := io.WriteString(a.Stdout, "no merges recorded\n")
		return err
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	for _, r := range records {
		out := r.OutputPath
		if out == "" {
			out = "-"
		}
		fmt.Fprintf(a.Stdout, "%s  %s -> %s  restored %d  appended %d  %s\n",
			r.MergedAt.Local().Format("2006-01-02 15:04"), r.BasePath, r.ModifiedPath, r.Restored, r.Orphans, out)
	}
	return nil
}

func (a *App) target(override bubbletea.OutputTarget) bubbletea.OutputTarget {
	t := a.Output
	if override.Dir != "" {
		t.Dir = override.Dir
	}
	if override.Name != "" {
		t.Name = override.Name
	}
	if override.Ext != "" {
		t.Ext = override.Ext
	}
	return t
}

// record appends to the history. Failures are logged, not returned.
func (a *App) record(r diffmend.MergeRecord) {
	if a.HistoryPath == "" {
		return
	}
	r.MergedAt = a.Now()
	if err := a.History.Append(a.HistoryPath, r); err != nil {
		a.Logger.Warn("failed to record merge", "path", a.HistoryPath, "error", err)
		return
	}
	a.Logger.Debug("merge recorded", "path", a.HistoryPath)
}

func writePreview(w io.Writer, p *diffmend.Preview) {
	if len(p.Hunks) == 0 {
		fmt.Fprintln(w, "(no changes)")
		return
	}
	var sb strings.Builder
	for _, h := range p.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Type {
			case diffmend.LineAdded:
				sb.WriteString("+")
			case diffmend.LineDeleted:
				sb.WriteString("-")
			default:
				sb.WriteString(" ")
			}
			sb.WriteString(l.Content)
			sb.WriteString("\n")
		}
	}
	_, _ = io.WriteString(w, sb.String())
}

func main() {
	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd(NewApp).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
