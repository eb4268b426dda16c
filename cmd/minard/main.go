package main

import (
	"os"

	"github.com/lintang-b-s/minard/pkg/chart"
	"github.com/lintang-b-s/minard/pkg/config"
	"github.com/lintang-b-s/minard/pkg/csvparser"
	"github.com/lintang-b-s/minard/pkg/logger"
	"github.com/lintang-b-s/minard/pkg/preprocessor"
	"github.com/lintang-b-s/minard/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := run(log); err != nil {
		log.Error("Minard visualisation failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(log *zap.Logger) error {
	v := viper.New()
	config.SetDefaults(v)
	if err := util.ReadConfig(v); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if cfg.Debug {
		debugLog, err := logger.NewDebug()
		if err != nil {
			return err
		}
		log = debugLog
		defer func() { _ = debugLog.Sync() }()
	}
	log.Info("Config loaded.", zap.String("config_file", v.ConfigFileUsed()),
		zap.String("input", cfg.InputPath), zap.String("output", cfg.OutputPath))

	campaign, err := csvparser.NewParser(log).ParseFile(cfg.InputPath)
	if err != nil {
		return err
	}

	layers, err := preprocessor.NewPreprocessor(campaign, cfg, log).PreProcessing()
	if err != nil {
		return err
	}

	_, err = chart.NewAssembler(cfg, log).WriteFile(cfg.OutputPath, layers)
	return err
}
