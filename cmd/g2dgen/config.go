/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */


package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"g2dgen/internal/config"
)

type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a config file with the defaults."`
	Show ConfigShowCmd `cmd:"" help:"Print the effective configuration."`
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *ConfigInitCmd) Run(ctx *Context) error {
	path, err := ctx.configPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("%s: %w", path, errConfigExists)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.SaveTo(path, config.Defaults()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	_, err = fmt.Fprintln(ctx.stdout, path)
	return err
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	enc := yaml.NewEncoder(ctx.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(ctx.cfg); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	for _, key := range config.Keys() {
		if env, ok := config.EnvOverrideFor(key); ok {
			if _, err := fmt.Fprintf(ctx.stdout, "# %s overridden by %s\n", key, env); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ctx *Context) configPath() (string, error) {
	if ctx.cfgSrc != "" {
		return ctx.cfgSrc, nil
	}
	return config.ConfigPath()
}
