package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "GLOWMART_CONFIG_FILE"

type storage struct {
	Path string `mapstructure:"path"`
}

type shipping struct {
	LocalFee  float64 `mapstructure:"local_fee"`
	RemoteFee float64 `mapstructure:"remote_fee"`
}

type spin struct {
	RevealDelay time.Duration `mapstructure:"reveal_delay"`
}

type Config struct {
	LogLevel slog.Level `mapstructure:"log_level"`
	Storage  storage    `mapstructure:"storage"`
	Shipping shipping   `mapstructure:"shipping"`
	Spin     spin       `mapstructure:"spin"`
}

// Load reads the config file named by --config or GLOWMART_CONFIG_FILE.
// A missing file is fine: the demo runs on defaults.
func Load() Config {
	setDefaults()

	path, explicit := getConfigFilepath()
	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || (!errors.As(err, &notFound) && !os.IsNotExist(err)) {
			die(err)
		}
	}

	var cfg Config
	if err := viper.UnmarshalExact(&cfg); err != nil {
		die(err)
	}

	return cfg
}

func setDefaults() {
	viper.SetDefault("log_level", 0)
	viper.SetDefault("storage.path", "glowmart.db")
	viper.SetDefault("shipping.local_fee", 60)
	viper.SetDefault("shipping.remote_fee", 120)
	viper.SetDefault("spin.reveal_delay", 3*time.Second)
}

func getConfigFilepath() (path string, explicit bool) {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])

	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env, true
	}
	return *arg, cmdLine.Changed("config")
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q

	Storage:
	Path=%q

	Shipping:
	LocalFee=%v
	RemoteFee=%v

	Spin:
	RevealDelay=%v

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.Storage.Path,
		c.Shipping.LocalFee,
		c.Shipping.RemoteFee,
		c.Spin.RevealDelay,
	)
}
