/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package host connects the path converter to the design tool session: it
// reads path geometry from the current selection, runs the converter and
// hands the statements to whatever displays them.
package host

import (
	"context"
	"errors"

	"g2dgen/internal/vector"
)

var (
	ErrEmptySelection   = errors.New("nothing selected")
	ErrUnsupportedShape = errors.New("please select a vector or a group of vectors")
	ErrSessionClosed    = errors.New("session closed")
)

// Geometry is one path to convert, positioned at Origin.
type Geometry struct {
	Name   string
	Origin vector.Pt
	Path   string
}

// ShapeSource supplies path geometry of the current selection.
type ShapeSource interface {
	ReadSelectedPathGeometry(ctx context.Context) ([]Geometry, error)
}

// StatementSink receives the generated statements of one run.
type StatementSink interface {
	Publish(ctx context.Context, statements []string) error
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
