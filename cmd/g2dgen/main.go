/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"g2dgen/internal/config"
	"g2dgen/internal/crash"
	applog "g2dgen/internal/log"
)

type Context struct {
	context.Context
	kctx   *kong.Context
	cfg    config.AppConfig
	cfgSrc string // explicit --config path, empty for the per-user file
	stdin  io.Reader
	stdout io.Writer
}

type cli struct {
	ConfigFile string `name:"config" help:"Config file to use instead of the per-user one." type:"path"`

	Version  VersionCmd  `cmd:"" help:"Print version information."`
	Decode   DecodeCmd   `cmd:"" help:"Decode an SVG path into typed points."`
	Emit     EmitCmd     `cmd:"" help:"Convert an SVG path into drawing statements."`
	Generate GenerateCmd `cmd:"" help:"Convert the selection of a document into drawing statements."`
	Relay    RelayCmd    `cmd:"" help:"Serve UI messages as JSON lines over stdin/stdout."`
	Config   ConfigCmd   `cmd:"" help:"Manage the configuration file."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defer crash.Recover("")

	var c cli
	parser, err := kong.New(&c,
		kong.Name("g2dgen"),
		kong.Description("Generate Graphics2D drawing statements from SVG path data."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "g2dgen: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "g2dgen: %v\n", err)
		return 1
	}

	cfg, cfgErr := loadConfig(c.ConfigFile)
	opts := cfg.Logging.LogOptions()
	opts.Console = stderr
	applog.Init(opts)
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		if c.ConfigFile != "" {
			_, _ = fmt.Fprintf(stderr, "g2dgen: %v\n", cfgErr)
			return 1
		}
		l.Warn("config not loaded, using defaults", slog.Any("err", cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = kctx.Run(&Context{
		Context: ctx,
		kctx:    kctx,
		cfg:     cfg,
		cfgSrc:  c.ConfigFile,
		stdin:   stdin,
		stdout:  stdout,
	})
	if err != nil {
		l.Debug("command failed", slog.String("cmd", kctx.Command()), slog.Any("err", err))
		_, _ = fmt.Fprintf(stderr, "g2dgen: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (config.AppConfig, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// readArg returns arg itself, or the whole of stdin when arg is "-".
func (ctx *Context) readArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(ctx.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")
