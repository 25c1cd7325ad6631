/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */


package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"g2dgen/internal/host"
	applog "g2dgen/internal/log"
	"g2dgen/internal/pathcode"
	"g2dgen/internal/vector"
	"g2dgen/internal/version"
)

type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.stdout, version.String())
	return err
}

type OriginFlags struct {
	OriginX float64 `name:"origin-x" help:"X of the shape origin added to every point." default:"0"`
	OriginY float64 `name:"origin-y" help:"Y of the shape origin added to every point." default:"0"`
}

func (o OriginFlags) origin() vector.Pt { return vector.Pt{X: o.OriginX, Y: o.OriginY} }

type DecodeCmd struct {
	OriginFlags `embed:""`
	JSON bool   `help:"Print the points as a JSON array."`
	Path string `arg:"" help:"SVG path data, or - to read it from stdin."`
}

func (c *DecodeCmd) Run(ctx *Context) error {
	path, err := ctx.readArg(c.Path)
	if err != nil {
		return err
	}
	pts, err := pathcode.Decode(c.origin(), path)
	if err != nil {
		return err
	}
	applog.WithOperation(applog.WithComponent("cli"), "decode").Debug("decoded", slog.Int("points", len(pts)))
	if c.JSON {
		return json.NewEncoder(ctx.stdout).Encode(pts)
	}
	for _, p := range pts {
		if _, err := fmt.Fprintf(ctx.stdout, "%d %d %s\n", p.X, p.Y, p.Kind); err != nil {
			return err
		}
	}
	return nil
}

type EmitCmd struct {
	OriginFlags `embed:""`
	Path string `arg:"" help:"SVG path data, or - to read it from stdin."`
}

func (c *EmitCmd) Run(ctx *Context) error {
	path, err := ctx.readArg(c.Path)
	if err != nil {
		return err
	}
	gen, err := ctx.generator(host.PathSource{Origin: c.origin(), Path: path}, host.WriterSink{W: ctx.stdout})
	if err != nil {
		return err
	}
	_, err = gen.Generate(ctx)
	return err
}

type GenerateCmd struct {
	Document string `arg:"" help:"Selection document (JSON), or - to read it from stdin."`
	Output   string `short:"o" help:"Write the statements to this file instead of stdout." type:"path"`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	doc, err := ctx.loadDocument(c.Document)
	if err != nil {
		return err
	}
	var sink host.StatementSink = host.WriterSink{W: ctx.stdout}
	if c.Output != "" {
		sink = host.FileSink{Path: c.Output}
	}
	gen, err := ctx.generator(host.DocumentSource{Doc: doc}, sink)
	if err != nil {
		return err
	}
	statements, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	if c.Output != "" {
		applog.WithOperation(applog.WithComponent("cli"), "generate").Info("statements written",
			slog.String("path", c.Output), slog.Int("statements", len(statements)))
	}
	return nil
}

type RelayCmd struct {
	Document string `arg:"" help:"Selection document (JSON) the session reads shapes from." type:"existingfile"`
}

func (c *RelayCmd) Run(ctx *Context) error {
	doc, err := vector.LoadDocumentFile(c.Document)
	if err != nil {
		return err
	}
	out := host.NewOutbox(ctx.stdout)
	gen, err := ctx.generator(host.DocumentSource{Doc: doc}, out)
	if err != nil {
		return err
	}
	return host.NewSession(gen, out).Serve(ctx, ctx.stdin)
}

func (ctx *Context) generator(src host.ShapeSource, sink host.StatementSink) (*host.Generator, error) {
	style, err := ctx.cfg.Emit.Style()
	if err != nil {
		return nil, err
	}
	return &host.Generator{Source: src, Sink: sink, Style: style}, nil
}

func (ctx *Context) loadDocument(arg string) (*vector.Document, error) {
	if arg == "-" {
		return vector.LoadDocument(ctx.stdin)
	}
	return vector.LoadDocumentFile(arg)
}
