/*
Copyright © 2025 InternatBlackhole
*/
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/InternatManhole/trains/cmd/add"
	"github.com/InternatManhole/trains/cmd/display"
	"github.com/InternatManhole/trains/cmd/selection"
	"github.com/InternatManhole/trains/internal/config"
	"github.com/InternatManhole/trains/internal/locale"
	"github.com/InternatManhole/trains/internal/logging"
	"github.com/InternatManhole/trains/internal/store"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trains",
	Short: "Keep a list of trains in a JSON file",
	Long: `trains maintains a list of trains (departure point, train number,
departure time, destination) stored as a JSON array in a data file.

Data file names are resolved inside the data directory ("data" by default),
which must already exist, as must the file itself.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var logLevel logging.StatusLevel
		if _verboseverbose {
			logLevel = logging.EvenMoreVerbose
		} else if _verbose {
			logLevel = logging.Verbose
		} else {
			logLevel = logging.NoStatus
		}
		logging.SetNewLogger(cmd.ErrOrStderr(), logLevel)

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if !cfg.Color {
			color.NoColor = true
		}
		GetLogger().EvenMoreVerbose("Using configuration %+v", cfg)

		cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := run(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	rootCmd.SetArgs(expandShorthands(args, flagTakesValue))
	return rootCmd.Execute()
}

var (
	_verbose        bool
	_verboseverbose bool

	_configPath string
	_dataDir    string
	_lang       string
	_json       bool
	_noColor    bool
)

func init() {
	fl := rootCmd.PersistentFlags()
	fl.BoolVarP(&_verbose, "verbose", "v", false, "Enable verbose output")
	fl.BoolVar(&_verboseverbose, "verboseverbose", false, "Enable very verbose output")
	fl.StringVar(&_configPath, "config", "", "YAML config file (keys: data_dir, lang, color, json)")
	fl.StringVar(&_dataDir, "data-dir", store.DefaultDataDir, "Directory holding the data files")
	fl.StringVar(&_lang, "lang", locale.DefaultLanguage, "Language of headers and messages (en, ru)")
	fl.BoolVar(&_json, "json", false, "Print records as JSON instead of a table")
	fl.BoolVar(&_noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(add.AddCmd)
	rootCmd.AddCommand(selection.SelectCmd)
	rootCmd.AddCommand(display.DisplayCmd)
}

// resolveConfig starts from the config file, if any, and applies the flags
// given explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if _configPath != "" {
		var err error
		cfg, err = config.Load(_configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("data-dir") {
		cfg.DataDir = _dataDir
	}
	if fl.Changed("lang") {
		cfg.Lang = _lang
	}
	if fl.Changed("json") {
		cfg.JSON = _json
	}
	if _noColor {
		cfg.Color = false
	}

	return cfg, cfg.Validate()
}
