// Package cli implements the oumugaeshi commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oumugaeshi/config"
	"oumugaeshi/logger"
	"oumugaeshi/reflect"
	"oumugaeshi/tokenize"
)

var (
	configPath string
	dictFlag   string
	debugFlag  bool
	dumpDir    string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "oumugaeshi",
	Short:         "Reflective listening replies for Japanese",
	Long:          "Echoes a Japanese utterance back as an empathetic paraphrase: 旅行へ行く -> 旅行へ行くんですね。",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $OUMUGAESHI_CONFIG or ./oumugaeshi.yaml)")
	RootCmd.PersistentFlags().StringVar(&dictFlag, "dict", "", "Tokenizer dictionary: uni or ipa")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Debug logging to stderr")
	RootCmd.PersistentFlags().StringVar(&dumpDir, "dump-dir", "", "Write a JSON dump per utterance into this directory")
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("OUMUGAESHI_CONFIG"); env != "" {
		return env
	}
	return "oumugaeshi.yaml"
}

// app holds what every command needs.
type app struct {
	cfg       *config.Config
	log       *zap.Logger
	analyzer  *tokenize.Analyzer
	reflector *reflect.Reflector
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, err
	}
	if dictFlag != "" {
		cfg.Tokenizer.Dict = dictFlag
	}
	if debugFlag {
		cfg.Logging.Level = "debug"
		cfg.Logging.Development = true
	}
	if dumpDir != "" {
		cfg.Logging.DumpDir = dumpDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if dir := cfg.Logging.DumpDir; dir != "" {
		if err := logger.InitLogs(dir); err != nil {
			return nil, fmt.Errorf("init dump dir: %w", err)
		}
	}
	a, err := tokenize.New(cfg.Tokenizer.Dict, cfg.Tokenizer.Mode, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, analyzer: a, reflector: reflect.New(cfg, log)}, nil
}

// dump writes v to the dump directory when one is configured.
func (a *app) dump(name string, v any) {
	dir := a.cfg.Logging.DumpDir
	if dir == "" {
		return
	}
	if err := logger.LogJSON(dir, name, v); err != nil {
		a.log.Warn("dump failed", zap.String("name", name), zap.Error(err))
	}
}
