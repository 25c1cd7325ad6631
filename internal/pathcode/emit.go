/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package pathcode

import (
	"fmt"
	"strconv"
	"strings"

	"g2dgen/internal/vector"
)

// Style holds the fixed parameters written into every statement.
type Style struct {
	Stroke      vector.Stroke
	GraphicsVar string // receiver of drawLine, first argument of ArcFunc
	ArcFunc     string // helper that draws a cubic through four points
}

// DefaultStyle reproduces the reference output:
// drawArc(g2d, ..., 1, Color.WHITE).
func DefaultStyle() Style {
	return Style{
		Stroke:      vector.Stroke{Color: vector.White, Width: 1},
		GraphicsVar: "g2d",
		ArcFunc:     "drawArc",
	}
}

// Emitter turns decoded points into drawing statements.
type Emitter struct {
	style Style
}

// NewEmitter returns an emitter for s. Empty names fall back to the defaults.
func NewEmitter(s Style) *Emitter {
	d := DefaultStyle()
	if strings.TrimSpace(s.GraphicsVar) == "" {
		s.GraphicsVar = d.GraphicsVar
	}
	if strings.TrimSpace(s.ArcFunc) == "" {
		s.ArcFunc = d.ArcFunc
	}
	return &Emitter{style: s}
}

// Emit walks points once. A line point consumes itself and its successor, a
// curve point itself and the next three; any other kind is skipped.
func (e *Emitter) Emit(points []Point) ([]string, error) {
	out := make([]string, 0, len(points)/2)
	for i := 0; i < len(points); {
		p := points[i]
		switch p.Kind {
		case KindLine:
			if i+1 >= len(points) {
				return nil, &Error{Kind: TruncatedSegment, Index: i, Command: p.Kind.String(), Message: "line needs an end point"}
			}
			q := points[i+1]
			out = append(out, fmt.Sprintf("%s.drawLine(%d, %d, %d, %d);", e.style.GraphicsVar, p.X, p.Y, q.X, q.Y))
			i += 2
		case KindCurve:
			if i+3 >= len(points) {
				return nil, &Error{Kind: TruncatedSegment, Index: i, Command: p.Kind.String(), Message: fmt.Sprintf("curve needs 4 points, have %d", len(points)-i)}
			}
			out = append(out, e.curve(points[i:i+4]))
			i += 4
		default:
			i++
		}
	}
	return out, nil
}

func (e *Emitter) curve(pts []Point) string {
	var b strings.Builder
	b.WriteString(e.style.ArcFunc)
	b.WriteString("(")
	b.WriteString(e.style.GraphicsVar)
	for _, p := range pts {
		fmt.Fprintf(&b, ", new Point(%d, %d)", p.X, p.Y)
	}
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(e.style.Stroke.Width, 'f', -1, 64))
	b.WriteString(", ")
	b.WriteString(e.style.Stroke.Color.JavaExpr())
	b.WriteString(");")
	return b.String()
}

// Emit uses DefaultStyle.
func Emit(points []Point) ([]string, error) {
	return NewEmitter(DefaultStyle()).Emit(points)
}

// Convert decodes path and emits its statements with s.
func Convert(origin vector.Pt, path string, s Style) ([]string, error) {
	pts, err := Decode(origin, path)
	if err != nil {
		return nil, err
	}
	return NewEmitter(s).Emit(pts)
}
