// Command wordscan runs word and line queries over a directory of text
// files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/baxromumarov/wordscan"
	"github.com/baxromumarov/wordscan/internal/config"
	"github.com/baxromumarov/wordscan/internal/logging"
	"github.com/baxromumarov/wordscan/source"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands.
type app struct {
	configPath      string
	verbose         bool
	suffix          string
	workers         int
	ioLimit         int
	lineParallelism int

	logger *zap.Logger
	engine *wordscan.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wordscan",
		Short: "Concurrent word and line queries over a tree of text files",
		Long: `wordscan walks a directory recursively, reads every eligible text file
and answers one query per run:

  uniqueWords    words that occur exactly once in their file
  lineWithMostA  the line with the most occurrences of the letter a
  consonants     a word with exactly n consonants (stops at the first)
  substring      up to limit words containing a substring (stops at the limit)`,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "wordscan.yaml", "Path to YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.suffix, "suffix", "", "Eligible file name suffix (default from config, .txt)")
	pf.IntVar(&a.workers, "workers", 0, "Files scanned at once by full scans (0 = one per CPU)")
	pf.IntVar(&a.ioLimit, "io-limit", 0, "Files scanned at once by early-stopping searches (0 = one task per file)")
	pf.IntVar(&a.lineParallelism, "line-parallelism", 0, "Line batches of one file indexed at once by uniqueWords")

	root.AddCommand(
		a.uniqueWordsCmd(),
		a.lineWithMostACmd(),
		a.consonantsCmd(),
		a.substringCmd(),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the
// logger and engine. Arguments have been validated by the time it runs,
// so errors from here on are not usage errors.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("suffix") {
		cfg.Search.Suffix = a.suffix
	}
	if flags.Changed("workers") {
		cfg.Search.Workers = a.workers
	}
	if flags.Changed("io-limit") {
		cfg.Search.IOLimit = a.ioLimit
	}
	if flags.Changed("line-parallelism") {
		cfg.Search.LineParallelism = a.lineParallelism
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.engine = newEngine(cfg, logger)

	logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("suffix", cfg.Search.Suffix),
		zap.Int("workers", cfg.Search.Workers),
		zap.Int("io_limit", cfg.Search.IOLimit))
	return nil
}

func newEngine(cfg *config.Config, logger *zap.Logger) *wordscan.Engine {
	return wordscan.New(
		wordscan.WithLister(source.Lister{Suffix: cfg.Search.Suffix}),
		wordscan.WithLineReader(source.Reader{MaxLineBytes: cfg.Search.MaxLineBytes}),
		wordscan.WithWorkers(cfg.Search.Workers),
		wordscan.WithIOLimit(cfg.Search.IOLimit),
		wordscan.WithLineParallelism(cfg.Search.LineParallelism),
		wordscan.WithLogger(logger),
	)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
