package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/vff/internal/config"
	"github.com/VoxDroid/vff/internal/db"
	"github.com/VoxDroid/vff/internal/distance"
	"github.com/VoxDroid/vff/internal/finder"
	"github.com/VoxDroid/vff/internal/history"
	"github.com/VoxDroid/vff/internal/render"
	"github.com/VoxDroid/vff/internal/version"
)

// ErrUsage is returned when the search command gets the wrong arguments.
var ErrUsage = errors.New("Usage: vff <target> <source>.")

// parallelThreshold is the line count from which scoring is spread over
// GOMAXPROCS workers when --workers is not given.
const parallelThreshold = 4096

var rootCmd = &cobra.Command{
	Use:   "vff <target> <source>",
	Short: "vff orders lines by fuzzy similarity to a target",
	Long: "vff scores every line of <source> against <target> and prints the lines\n" +
		"from most to least similar. Lines that contain every target character in\n" +
		"order are printed first unless --group=false. Example:\n" +
		"  vff greek \"$(cat words.txt)\"\n" +
		"  vff -f words.txt greek\n" +
		"History and defaults are managed with vff-admin.",
	Version:      version.Version,
	Args:         searchArgs,
	SilenceUsage: true,
	RunE:         runSearch,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func searchArgs(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		if len(args) != 1 {
			return fmt.Errorf("%w (with --file give only <target>)", ErrUsage)
		}
		return nil
	}
	if len(args) != 2 {
		return ErrUsage
	}
	return nil
}

type searchOptions struct {
	algorithm string
	find      finder.Options
	render    render.Options
	record    bool
	verbose   bool
}

// resolveSearchOptions merges persisted settings with flags. Flags win when
// set explicitly.
func resolveSearchOptions(cmd *cobra.Command, s config.Settings) (searchOptions, error) {
	flags := cmd.Flags()
	var o searchOptions

	o.algorithm = s.Algorithm
	if flags.Changed("algorithm") {
		o.algorithm, _ = flags.GetString("algorithm")
	}
	scorer, err := distance.Lookup(o.algorithm)
	if err != nil {
		return o, err
	}
	if o.algorithm == "" {
		o.algorithm = string(distance.DefaultAlgorithm)
	}
	o.algorithm = strings.ToLower(strings.TrimSpace(o.algorithm))

	o.find.Scorer = scorer
	o.find.GroupComplete = s.GroupComplete()
	if flags.Changed("group") {
		o.find.GroupComplete, _ = flags.GetBool("group")
	}
	o.find.MaxResults = s.MaxResults
	if flags.Changed("max") {
		o.find.MaxResults, _ = flags.GetInt("max")
	}
	if o.find.MaxResults < 0 {
		return o, fmt.Errorf("--max must not be negative, got %d", o.find.MaxResults)
	}
	o.find.Workers, _ = flags.GetInt("workers")

	colorName := s.Color
	if flags.Changed("color") {
		colorName, _ = flags.GetString("color")
	}
	mode, err := render.ParseColorMode(colorName)
	if err != nil {
		return o, err
	}
	o.render.Color = render.UseColor(mode, cmd.OutOrStdout())
	o.render.Sanitize = o.render.Color
	o.render.ShowDistance, _ = flags.GetBool("distance")

	o.record = s.Record
	if flags.Changed("record") {
		o.record, _ = flags.GetBool("record")
	}
	o.verbose, _ = flags.GetBool("verbose")
	return o, nil
}

// readSource returns the text to search: the second argument, or the
// contents of --file ("-" reads stdin) with one trailing newline removed.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return args[1], nil
	}
	var b []byte
	var err error
	if file == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		cmd.PrintErrf("warning: ignoring settings: %v\n", err)
		settings = config.Defaults()
	}
	opts, err := resolveSearchOptions(cmd, settings)
	if err != nil {
		return err
	}
	target := args[0]
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	lines := finder.SplitLines(source)
	if opts.find.Workers == 0 && len(lines) >= parallelThreshold {
		opts.find.Workers = runtime.GOMAXPROCS(0)
	}
	results := finder.Rank(target, lines, opts.find)
	elapsed := time.Since(start)

	if opts.verbose {
		cmd.PrintErrf("scored %d lines with %s in %s (%d complete, %d shown)\n",
			len(lines), opts.algorithm, elapsed, finder.CountComplete(results), len(results))
	}
	if err := render.Write(cmd.OutOrStdout(), results, opts.render); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if opts.record {
		recordSearch(cmd, history.NewEntry(target, opts.algorithm, len(lines), results, elapsed))
	}
	return nil
}

// recordSearch stores e in the history database. Failures are reported as
// warnings and do not fail the search.
func recordSearch(cmd *cobra.Command, e history.Entry) {
	dbConn, err := db.InitDB()
	if err != nil {
		cmd.PrintErrf("warning: could not record search: %v\n", err)
		return
	}
	r := history.NewRepository(dbConn)
	defer func() { _ = r.Close() }()
	if _, err := r.Record(e); err != nil {
		cmd.PrintErrf("warning: could not record search: %v\n", err)
	}
}

func init() {
	names := make([]string, 0, len(distance.Algorithms()))
	for _, a := range distance.Algorithms() {
		names = append(names, string(a))
	}
	rootCmd.Flags().StringP("algorithm", "a", string(distance.DefaultAlgorithm), "Scoring algorithm ("+strings.Join(names, ", ")+")")
	rootCmd.Flags().IntP("max", "n", 0, "Maximum number of lines to print (0 = all)")
	rootCmd.Flags().BoolP("group", "g", true, "Print complete matches before incomplete ones")
	rootCmd.Flags().BoolP("distance", "d", false, "Prefix each line with its distance")
	rootCmd.Flags().String("color", string(render.ColorAuto), "Color output: auto, always or never")
	rootCmd.Flags().Bool("record", false, "Record this search in the history database")
	rootCmd.Flags().StringP("file", "f", "", "Read the source from a file ('-' for stdin)")
	rootCmd.Flags().Int("workers", 0, "Goroutines used for scoring (0 = automatic)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Print diagnostics to stderr")
	rootCmd.SetVersionTemplate("vff {{.Version}}\n")
}
