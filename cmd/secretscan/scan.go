package secretscan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/redactyl/secretscan/internal/classify"
	"github.com/redactyl/secretscan/internal/config"
	"github.com/redactyl/secretscan/internal/engine"
	"github.com/redactyl/secretscan/internal/git"
	"github.com/redactyl/secretscan/internal/logging"
	"github.com/redactyl/secretscan/internal/report"
	"github.com/redactyl/secretscan/internal/types"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatSARIF = "sarif"
)

// runScan locates the repository, resolves settings and reports offenders.
// A returned error means exit 2; offenders set *code to 1.
func runScan(ctx context.Context, opts *options, stdout, stderr io.Writer, code *int) error {
	if !logging.ValidFormat(opts.logFormat) {
		return fmt.Errorf("log format must be 'text' or 'json', got %q", opts.logFormat)
	}
	log := logging.New(stderr, opts.verbose, opts.logFormat)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	root, err := git.FindRoot(cwd)
	if err != nil {
		return err
	}
	log.Debug("repository root", "root", root)

	fc, cfgPath, err := loadConfig(opts.configPath, root)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		log.Debug("loaded config", "path", cfgPath)
	}

	mode, err := types.ParseMode(pickString(opts.mode, fc.Mode, string(types.ModeStaged)))
	if err != nil {
		return err
	}
	format := pickString(opts.format, fc.Format, formatText)
	switch format {
	case formatText, formatJSON, formatSARIF:
	default:
		return fmt.Errorf("format must be 'text', 'json' or 'sarif', got %q", format)
	}
	maxBytes := pickInt64(opts.maxBytes, fc.MaxBytes, engine.DefaultMaxBytes)
	if maxBytes < 0 {
		return fmt.Errorf("max bytes must not be negative, got %d", maxBytes)
	}
	backend := pickString(opts.backend, fc.Backend, git.BackendAuto)
	exclude := ""
	if fc.Exclude != nil {
		exclude = *fc.Exclude
	}

	lister, err := git.NewLister(root, backend)
	if err != nil {
		return err
	}
	policy := classify.NewPolicy(fc.ExtraReservedDirs, fc.ExtraBannedExtensions, fc.ExtraScanExtensions)
	res, err := engine.ScanWithStats(ctx, engine.Config{
		Root:         root,
		Mode:         mode,
		MaxBytes:     maxBytes,
		Policy:       &policy,
		ExcludeGlobs: exclude,
		Logger:       log,
	}, lister)
	if err != nil {
		return err
	}
	log.Debug("scan complete",
		"mode", mode,
		"candidates", res.Stats.Candidates,
		"scanned", res.Stats.Scanned,
		"ignored", res.Stats.Ignored,
		"missing", res.Stats.Missing,
		"excluded", res.Stats.Excluded,
		"offenders", len(res.Offenders),
		"duration", res.Stats.Duration,
	)

	switch format {
	case formatJSON:
		err = report.WriteJSON(stdout, mode, res)
	case formatSARIF:
		repo, commit, branch := git.RepoMetadata(root)
		err = report.WriteSARIF(stdout, res.Offenders, report.SARIFOptions{
			ToolVersion: version,
			RepoURI:     repo,
			Revision:    commit,
			Branch:      branch,
		})
	default:
		report.PrintText(stdout, stderr, res.Offenders, report.PrintOptions{Color: useColor(opts.noColor, stderr)})
	}
	if err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}
	if len(res.Offenders) > 0 {
		*code = ExitOffenders
	}
	return nil
}

// loadConfig reads an explicit config file, or the first local one at root.
func loadConfig(explicit, root string) (config.FileConfig, string, error) {
	if explicit != "" {
		fc, err := config.LoadFile(explicit)
		if err != nil {
			return fc, "", fmt.Errorf("load config: %w", err)
		}
		return fc, explicit, nil
	}
	fc, path, err := config.LoadLocal(root)
	if errors.Is(err, config.ErrNoConfig) {
		return config.FileConfig{}, "", nil
	}
	if err != nil {
		return fc, "", fmt.Errorf("load config: %w", err)
	}
	return fc, path, nil
}
