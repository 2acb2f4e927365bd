/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) 2018 Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/andodevel/telex-engine/telex"
)

const (
	IBpreeditUnderline uint = 1 << iota
	IBcommitWordBreak

	IBstdFlags = IBpreeditUnderline | IBcommitWordBreak
)

type Config struct {
	InputMethod   string
	OutputCharset string
	// ExceptedList holds WM_CLASS names of windows where keys are passed
	// through untouched.
	ExceptedList []string
	IBflags      uint
}

func DefaultConfig() *Config {
	return &Config{
		InputMethod:   EngineName,
		OutputCharset: telex.UNICODE,
		ExceptedList:  []string{},
		IBflags:       IBstdFlags,
	}
}

func getConfigDir(engineName string) string {
	var dir, err = os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "ibus-"+strings.ToLower(engineName))
}

func getConfigPath(engineName string) string {
	return filepath.Join(getConfigDir(engineName), "ibus-"+strings.ToLower(engineName)+".config.json")
}

func newConfigViper() *viper.Viper {
	var v = viper.New()
	v.SetConfigType("json")
	var defaults = DefaultConfig()
	v.SetDefault("InputMethod", defaults.InputMethod)
	v.SetDefault("OutputCharset", defaults.OutputCharset)
	v.SetDefault("ExceptedList", defaults.ExceptedList)
	v.SetDefault("IBflags", defaults.IBflags)
	return v
}

// LoadConfig reads the engine's config file. A missing file yields the
// defaults; unknown charsets and input methods fall back to the defaults.
func LoadConfig(engineName string) (*Config, error) {
	var path = getConfigPath(engineName)
	var v = newConfigViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	if !telex.IsValidCharset(c.OutputCharset) {
		c.OutputCharset = telex.UNICODE
	}
	if _, ok := telex.InputMethodDefinitions[c.InputMethod]; !ok {
		c.InputMethod = EngineName
	}
	return &c, nil
}

func SaveConfig(c *Config, engineName string) error {
	var dir = getConfigDir(engineName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	var v = newConfigViper()
	v.Set("InputMethod", c.InputMethod)
	v.Set("OutputCharset", c.OutputCharset)
	v.Set("ExceptedList", c.ExceptedList)
	v.Set("IBflags", c.IBflags)

	var path = getConfigPath(engineName)
	return errors.Wrapf(v.WriteConfigAs(path), "writing config %s", path)
}

// ensureConfig writes the default config when the engine has none yet.
func ensureConfig(engineName string) error {
	var path = getConfigPath(engineName)
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "checking config %s", path)
	}
	return SaveConfig(DefaultConfig(), engineName)
}
