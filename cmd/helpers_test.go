package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/VoxDroid/vff/internal/config"
)

// isolate points the data dir and database at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv(config.EnvVFFHome, tmp)
	t.Setenv(config.EnvVFFDB, "")
	t.Setenv("NO_COLOR", "")
	return tmp
}

// resetFlags restores every flag to its default so package-level commands
// can be executed repeatedly.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the search command with args and stdin, returning stdout and
// stderr.
func run(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	return execute(t, rootCmd, stdin, args...)
}

// runAdmin executes the management commands like run.
func runAdmin(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	return execute(t, adminCmd, stdin, args...)
}

func execute(t *testing.T, c *cobra.Command, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(c)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetIn(stdin)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), errOut.String(), err
}
