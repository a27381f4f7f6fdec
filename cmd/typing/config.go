/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/typing/pkg/diag"
	"github.com/voedger/typing/pkg/typing"
	"github.com/voedger/typing/pkg/typing/sys"
)

const (
	sinkLog = "log"
	sinkNop = "nop"
)

// Config holds runtime configuration of typing CLI.
// Values are populated from .typing.yaml, TYPING_* env vars and defaults.
type Config struct {
	Root string `mapstructure:"root"`
	Sink string `mapstructure:"sink"`
}

// Loads configuration from specified file, or from .typing.yaml found in
// working or home directory. Missing default config file is not an error.
func loadConfig(cfgFile string) (Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".typing")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("TYPING")
	v.AutomaticEnv()

	v.SetDefault("root", "sys")
	v.SetDefault("sink", sinkLog)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
	} else if logger.IsVerbose() {
		logger.Verbose("using config file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) sink() (diag.ISink, error) {
	switch c.Sink {
	case sinkLog:
		return diag.LogSink(), nil
	case sinkNop:
		return diag.NopSink(), nil
	}
	return nil, typing.ErrInvalid("sink «%v», should be «%s» or «%s»", c.Sink, sinkLog, sinkNop)
}

// Loads configuration for command and creates standard types.
func newSys(cmd *cobra.Command) (*sys.Sys, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	sink, err := cfg.sink()
	if err != nil {
		return nil, err
	}
	return sys.New(cfg.Root, sink)
}
