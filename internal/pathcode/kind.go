/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package pathcode converts vector path data into Java2D drawing statements.
//
// Decode turns a path string plus an origin into absolute, rounded points and
// Emit groups those points into g2d.drawLine / drawArc statements. Both are pure
// functions; nothing is shared between calls.
package pathcode

import "fmt"

// SegmentKind names a path command. On a decoded Point it describes the segment
// that STARTS at that point (the command following it in the path), not the
// command that produced it. The emitter relies on this to chunk points in a
// single forward pass.
type SegmentKind uint8

const (
	KindMove SegmentKind = iota
	KindLine
	KindHorizontal
	KindVertical
	KindCurve
	KindSmoothCurve
	KindQuadratic
	KindSmoothQuadratic
	KindArc
	KindClose
)

var commandKinds = map[byte]SegmentKind{
	'M': KindMove,
	'L': KindLine,
	'H': KindHorizontal,
	'V': KindVertical,
	'C': KindCurve,
	'S': KindSmoothCurve,
	'Q': KindQuadratic,
	'T': KindSmoothQuadratic,
	'A': KindArc,
	'Z': KindClose,
}

var kindNames = [...]string{
	KindMove:            "move",
	KindLine:            "line",
	KindHorizontal:      "horizontal",
	KindVertical:        "vertical",
	KindCurve:           "curve",
	KindSmoothCurve:     "smooth curve",
	KindQuadratic:       "quadratic curve",
	KindSmoothQuadratic: "smooth quadratic curve",
	KindArc:             "arc",
	KindClose:           "close",
}

// KindOf maps a command letter to its kind.
func KindOf(cmd byte) (SegmentKind, bool) {
	k, ok := commandKinds[cmd]
	return k, ok
}

func (k SegmentKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("SegmentKind(%d)", k)
}

// MarshalText lets points serialize with readable kind names.
func (k SegmentKind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown segment kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// Point is an absolute, origin-translated and rounded path coordinate.
type Point struct {
	X    int         `json:"x"`
	Y    int         `json:"y"`
	Kind SegmentKind `json:"type"`
}
