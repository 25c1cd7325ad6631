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
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2/strconv"

	"g2dgen/internal/vector"
)

// token is one command letter with its raw arguments.
type token struct {
	cmd  byte
	kind SegmentKind
	args []string
}

// pending is a decoded point before rounding; tok is kept for error reporting.
type pending struct {
	p    vector.Pt
	kind SegmentKind
	tok  int
}

// Decode parses path data into absolute points translated by origin.
//
// Supported commands are the absolute SVG letters M L H V C S Q T A Z, each
// starting its own token (no implicit repetition). Only M, L, C and Z produce
// or remove points; the other letters are recognized so that the point before
// them gets the right kind. Coordinates are rounded once, after the whole path
// has been walked.
//
// An empty path yields no points and no error.
func Decode(origin vector.Pt, path string) ([]Point, error) {
	toks, err := tokenize(path)
	if err != nil {
		return nil, err
	}
	xf := vector.Translate(origin.X, origin.Y)
	var pts []pending

	for i, t := range toks {
		args, err := t.numbers(i)
		if err != nil {
			return nil, err
		}
		switch t.kind {
		case KindMove:
			if len(args) != 2 {
				return nil, argCountError(i, t, "one coordinate pair")
			}
			if i == len(toks)-1 {
				return nil, &Error{Kind: TruncatedPath, Index: i, Command: string(t.cmd), Message: "move is the last command"}
			}
			pts = append(pts, pending{p: xf.Apply(vector.Pt{X: args[0], Y: args[1]}), kind: toks[i+1].kind, tok: i})
		case KindLine:
			if len(args) != 2 {
				return nil, argCountError(i, t, "one coordinate pair")
			}
			p := xf.Apply(vector.Pt{X: args[0], Y: args[1]})
			pts = append(pts, pending{p: p, kind: KindLine, tok: i})
			if next, ok := boundaryKind(toks, i); ok {
				pts = append(pts, pending{p: p, kind: next, tok: i})
			}
		case KindCurve:
			if len(args) == 0 || len(args)%2 != 0 {
				return nil, argCountError(i, t, "coordinate pairs")
			}
			var last vector.Pt
			for j := 0; j < len(args); j += 2 {
				last = xf.Apply(vector.Pt{X: args[j], Y: args[j+1]})
				pts = append(pts, pending{p: last, kind: KindCurve, tok: i})
			}
			if next, ok := boundaryKind(toks, i); ok {
				pts = append(pts, pending{p: last, kind: next, tok: i})
			}
		case KindClose:
			if len(args) != 0 {
				return nil, argCountError(i, t, "no arguments")
			}
			// The point pushed for the segment ending in Z is redundant.
			if len(pts) > 0 {
				pts = pts[:len(pts)-1]
			}
		default:
			// H, V, S, Q, T, A only type the preceding point.
		}
	}

	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		x, okX := roundCoord(p.p.X)
		y, okY := roundCoord(p.p.Y)
		if !okX || !okY {
			return nil, &Error{Kind: MalformedArguments, Index: p.tok, Command: string(toks[p.tok].cmd), Message: "coordinate out of range"}
		}
		out = append(out, Point{X: x, Y: y, Kind: p.kind})
	}
	return out, nil
}

// boundaryKind returns the kind of the token after i when the segment at i
// continues into it, i.e. i is not last and the next token is not a move.
func boundaryKind(toks []token, i int) (SegmentKind, bool) {
	if i == len(toks)-1 || toks[i+1].kind == KindMove {
		return 0, false
	}
	return toks[i+1].kind, true
}

func tokenize(path string) ([]token, error) {
	var raws []string
	start := 0
	for i := 0; i < len(path); i++ {
		if i > start && isCommandLetter(path[i]) {
			raws = append(raws, path[start:i])
			start = i
		}
	}
	raws = append(raws, path[start:])

	toks := make([]token, 0, len(raws))
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		kind, ok := KindOf(raw[0])
		if !ok {
			r, _ := utf8.DecodeRuneInString(raw)
			return nil, &Error{Kind: UnsupportedCommand, Index: len(toks), Command: string(r)}
		}
		toks = append(toks, token{cmd: raw[0], kind: kind, args: splitArgs(raw[1:])})
	}
	return toks, nil
}

// isCommandLetter reports whether c starts a new token. e and E belong to
// numbers in exponent notation.
func isCommandLetter(c byte) bool {
	if c == 'e' || c == 'E' {
		return false
	}
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
	})
}

func (t token) numbers(idx int) ([]float64, error) {
	vals := make([]float64, 0, len(t.args))
	for _, a := range t.args {
		v, n := strconv.ParseFloat([]byte(a))
		if n == 0 || n != len(a) || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &Error{Kind: MalformedArguments, Index: idx, Command: string(t.cmd), Message: fmt.Sprintf("not a number: %q", a)}
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func argCountError(idx int, t token, want string) error {
	return &Error{
		Kind:    MalformedArguments,
		Index:   idx,
		Command: string(t.cmd),
		Message: fmt.Sprintf("want %s, got %d numbers", want, len(t.args)),
	}
}

// roundCoord rounds to the nearest integer with ties toward +Inf, the
// rounding the design tool's scripting host applies. Results must fit an
// int32 since they end up as Java int literals.
func roundCoord(v float64) (int, bool) {
	r := math.Round(v)
	if v-r == 0.5 {
		r++
	}
	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, false
	}
	return int(r), true
}
