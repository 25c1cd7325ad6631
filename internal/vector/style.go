/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Styles used when emitting drawing statements.

type Color struct{ R, G, B, A uint8 }

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// awtColors are the java.awt.Color constants, keyed by their constant name.
var awtColors = map[string]Color{
	"WHITE":      White,
	"LIGHT_GRAY": {192, 192, 192, 255},
	"GRAY":       {128, 128, 128, 255},
	"DARK_GRAY":  {64, 64, 64, 255},
	"BLACK":      Black,
	"RED":        {255, 0, 0, 255},
	"PINK":       {255, 175, 175, 255},
	"ORANGE":     {255, 200, 0, 255},
	"YELLOW":     {255, 255, 0, 255},
	"GREEN":      {0, 255, 0, 255},
	"MAGENTA":    {255, 0, 255, 255},
	"CYAN":       {0, 255, 255, 255},
	"BLUE":       {0, 0, 255, 255},
}

// ParseColor accepts an AWT constant name ("white", "LIGHT_GRAY", "light gray")
// or a hex literal #RRGGBB / #RRGGBBAA.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		b, err := hex.DecodeString(s[1:])
		if err != nil || (len(b) != 3 && len(b) != 4) {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		c := Color{R: b[0], G: b[1], B: b[2], A: 255}
		if len(b) == 4 {
			c.A = b[3]
		}
		return c, nil
	}
	name := strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(s))
	if name == "LIGHTGRAY" || name == "DARKGRAY" {
		name = name[:len(name)-4] + "_GRAY"
	}
	if c, ok := awtColors[name]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// JavaExpr renders c as a java.awt.Color expression, preferring the named
// constant when one matches.
func (c Color) JavaExpr() string {
	for name, nc := range awtColors {
		if nc == c {
			return "Color." + name
		}
	}
	if c.A == 255 {
		return fmt.Sprintf("new Color(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("new Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

type Stroke struct {
	Color Color
	Width float64
}
