package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repliq/repliq/command"
	"github.com/repliq/repliq/core/config"
	"github.com/repliq/repliq/core/log"
	"github.com/repliq/repliq/internal/calc"
	"github.com/repliq/repliq/looper"
	"github.com/repliq/repliq/terminal"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive calculator REPL",
	Long: `A simple calculator REPL holding a single register, with three commands:

  add       - adds a value to the register and prints its contents
  subtract  - subtracts a value from the register and prints its contents
  print     - prints the contents of the register, leaving it unchanged

The built-in help and quit commands are also available. Type 'help' at
the prompt for usage and examples.`,
	RunE:          runCalc,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is inconsequential on exit

	commander, err := calc.NewCommander(command.Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid command set: %v\n", err)
		return err
	}

	register := &calc.Register{}
	loop := looper.New(terminal.NewStdio(), commander, register, looper.Options{
		Logger: logger,
		Prompts: looper.Prompts{
			Applied: cfg.GetString("prompts.applied", ""),
			Skipped: cfg.GetString("prompts.skipped", ""),
			Erred:   cfg.GetString("prompts.erred", ""),
		},
	})

	return loop.Run()
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.New(nil), nil
	}
	return config.Load(cfgFile, config.LoadOptions{EnvPrefix: "CALC"})
}

func buildLogger(cfg *config.Config) (*log.Logger, error) {
	levelName := cfg.GetString("log.level", "info")
	if verbose {
		levelName = "debug"
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	format := log.FormatConsole
	if cfg.GetString("log.format", "console") == "json" {
		format = log.FormatJSON
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Name:   "calc",
	}), nil
}
