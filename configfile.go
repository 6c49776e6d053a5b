package mapreduce

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// fileConfig is the YAML shape loaded by LoadConfigFile, matching a
// "mapreduce:" root key. It only covers the sizing/timing knobs that make
// sense to externalize; account id, script contents, and the user argument
// are still supplied programmatically via Option at run time.
type fileConfig struct {
	WorkerPoolSize  uint   `mapstructure:"worker_pool_size"`
	ChannelCapacity uint   `mapstructure:"channel_capacity"`
	ReporterPeriod  string `mapstructure:"reporter_period"`
	ReceiveTimeout  string `mapstructure:"receive_timeout"`
	ScriptRoot      string `mapstructure:"script_root"`
}

type fileConfigRoot struct {
	MapReduce fileConfig `mapstructure:"mapreduce"`
}

// LoadConfigFile reads worker_pool_size, channel_capacity, reporter_period,
// receive_timeout, and script_root from a YAML file's "mapreduce:" key via
// viper, and returns Options applying them — so a caller assembles the full
// RunConfig with opts, err := LoadConfigFile(path) followed by
// NewRunConfig(append(opts, WithAccountID(id), WithScript(src, path))...).
//
// Mirrors firestige-Otus's internal/config.Load: a viper.New instance reads
// one file, unmarshals into a root wrapper keyed by the module name, and
// the caller combines the result with its own run-specific values.
func LoadConfigFile(path string) ([]Option, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("mapreduce.worker_pool_size", defaultWorkerPoolSize)
	v.SetDefault("mapreduce.channel_capacity", defaultChannelCapacity)
	v.SetDefault("mapreduce.reporter_period", "30s")
	v.SetDefault("mapreduce.receive_timeout", "1s")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("mapreduce: reading config file: %w", err)
	}

	var root fileConfigRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("mapreduce: decoding config file: %w", err)
	}
	fc := root.MapReduce

	reporterPeriod, err := time.ParseDuration(fc.ReporterPeriod)
	if err != nil {
		return nil, fmt.Errorf("mapreduce: invalid reporter_period %q: %w", fc.ReporterPeriod, err)
	}
	receiveTimeout, err := time.ParseDuration(fc.ReceiveTimeout)
	if err != nil {
		return nil, fmt.Errorf("mapreduce: invalid receive_timeout %q: %w", fc.ReceiveTimeout, err)
	}

	opts := []Option{
		WithWorkerPoolSize(fc.WorkerPoolSize),
		WithChannelCapacity(fc.ChannelCapacity),
		WithReporterPeriod(reporterPeriod),
		WithReceiveTimeout(receiveTimeout),
	}
	if fc.ScriptRoot != "" {
		opts = append(opts, WithScriptRoot(fc.ScriptRoot))
	}
	return opts, nil
}
