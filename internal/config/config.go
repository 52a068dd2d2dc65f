// Package config resolves oreutils settings from flags and OREUTILS_*
// environment variables. No config file is read.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"oreutils/internal/crates"
	"oreutils/internal/tools"
)

const envPrefix = "OREUTILS"

// Keys understood by Load.
const (
	KeyRegistry  = "registry"
	KeyCargo     = "cargo"
	KeyTimeout   = "timeout"
	KeyRustflags = "rustflags"
	KeyVerbose   = "verbose"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Registry  string
	Cargo     string
	Timeout   time.Duration
	Rustflags string
	Verbose   bool
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRegistry, crates.DefaultHost)
	v.SetDefault(KeyCargo, "cargo")
	v.SetDefault(KeyTimeout, crates.DefaultTimeout)
	v.SetDefault(KeyRustflags, tools.DefaultRustflags)
	v.SetDefault(KeyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the persistent flags that override environment values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyRegistry, KeyCargo, KeyTimeout, KeyVerbose} {
		if f := fs.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load reads Settings out of v.
func Load(v *viper.Viper) Settings {
	s := Settings{
		Registry:  strings.TrimSpace(v.GetString(KeyRegistry)),
		Cargo:     strings.TrimSpace(v.GetString(KeyCargo)),
		Timeout:   v.GetDuration(KeyTimeout),
		Rustflags: v.GetString(KeyRustflags),
		Verbose:   v.GetBool(KeyVerbose),
	}
	if s.Registry == "" {
		s.Registry = crates.DefaultHost
	}
	if s.Cargo == "" {
		s.Cargo = "cargo"
	}
	if s.Timeout <= 0 {
		s.Timeout = crates.DefaultTimeout
	}
	if s.Rustflags == "" {
		s.Rustflags = tools.DefaultRustflags
	}
	return s
}
