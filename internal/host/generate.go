/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package host

import (
	"context"
	"fmt"
	"log/slog"

	applog "g2dgen/internal/log"
	"g2dgen/internal/pathcode"
)

// Generator runs the converter over every geometry of the selection and
// publishes all statements at once.
type Generator struct {
	Source ShapeSource
	Sink   StatementSink
	Style  pathcode.Style
}

// Generate publishes nothing when any geometry fails to convert.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	l := applog.WithOperation(applog.WithComponent("host"), "generate")
	geoms, err := g.Source.ReadSelectedPathGeometry(ctx)
	if err != nil {
		l.Warn("read selection failed", slog.Any("err", err))
		return nil, err
	}
	em := pathcode.NewEmitter(g.Style)
	statements := []string{}
	for i, geo := range geoms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pts, err := pathcode.Decode(geo.Origin, geo.Path)
		if err != nil {
			l.Error("decode failed", slog.Int("shape", i), slog.String("name", geo.Name), slog.Any("err", err))
			return nil, fmt.Errorf("shape %d (%s): %w", i, geo.Name, err)
		}
		out, err := em.Emit(pts)
		if err != nil {
			l.Error("emit failed", slog.Int("shape", i), slog.String("name", geo.Name), slog.Any("err", err))
			return nil, fmt.Errorf("shape %d (%s): %w", i, geo.Name, err)
		}
		l.Debug("shape converted", slog.String("name", geo.Name), slog.Int("points", len(pts)), slog.Int("statements", len(out)))
		statements = append(statements, out...)
	}
	if g.Sink != nil {
		if err := g.Sink.Publish(ctx, statements); err != nil {
			l.Error("publish failed", slog.Any("err", err))
			return nil, fmt.Errorf("publish statements: %w", err)
		}
	}
	l.Info("code generated", slog.Int("shapes", len(geoms)), slog.Int("statements", len(statements)))
	return statements, nil
}
