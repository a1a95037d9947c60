package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/naoina/toml"
	"github.com/tos-network/gbank/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
	dataDirFlag = &cli.StringFlag{
		Name:     "datadir",
		Usage:    "Data directory for the ledger database",
		Value:    defaultDataDir(),
		Category: flags.LedgerCategory,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type gbankConfig struct {
	DataDir string
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gbank"
	}
	return filepath.Join(home, ".gbank")
}

// loadConfig resolves the effective configuration: built-in defaults,
// overridden by the config file, overridden by command line flags.
func loadConfig(ctx *cli.Context) (gbankConfig, error) {
	cfg := gbankConfig{DataDir: defaultDataDir()}
	if file := ctx.String(configFileFlag.Name); file != "" {
		f, err := os.Open(file)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err := tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("%s: %v", file, err)
		}
	}
	if ctx.IsSet(dataDirFlag.Name) {
		cfg.DataDir = ctx.String(dataDirFlag.Name)
	}
	return cfg, nil
}
