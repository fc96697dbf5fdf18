package secretscan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/redactyl/secretscan/internal/git"
)

const hookScript = `#!/bin/sh
# pre-commit hook installed by secretscan
exec secretscan --mode staged
`

func newHookCmd(stdout io.Writer) *cobra.Command {
	hook := &cobra.Command{
		Use:   "hook",
		Short: "Manage the git pre-commit hook",
	}
	var force bool
	install := &cobra.Command{
		Use:   "install",
		Short: "Install a pre-commit hook that scans staged files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			root, err := git.FindRoot(cwd)
			if err != nil {
				return err
			}
			dir, err := git.HooksDir(cmd.Context(), root)
			if err != nil {
				return err
			}
			path, err := installHook(dir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Installed pre-commit hook: %s\n", path)
			return nil
		},
	}
	install.Flags().BoolVar(&force, "force", false, "overwrite an existing pre-commit hook")
	hook.AddCommand(install)
	return hook
}

// installHook writes the pre-commit script into dir. An existing hook is
// kept unless force is set.
func installHook(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "pre-commit")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	if err := writeExecutableFile(path, hookScript); err != nil {
		return "", err
	}
	return path, nil
}

func writeExecutableFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return err
	}
	return os.Chmod(path, 0o755)
}
