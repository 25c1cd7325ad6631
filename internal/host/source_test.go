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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"g2dgen/internal/vector"
)

func vec(name string, x, y float64, data ...string) vector.Node {
	n := vector.Node{Type: vector.TypeVector, Name: name, X: x, Y: y}
	for _, d := range data {
		n.VectorPaths = append(n.VectorPaths, vector.VectorPath{WindingRule: "NONZERO", Data: d})
	}
	return n
}

func TestDocumentSourceVector(t *testing.T) {
	doc := &vector.Document{Selection: []vector.Node{
		vec("a", 1, 2, "M 0 0 L 1 1", "M 5 5 L 6 6"),
		vec("ignored", 0, 0, "M 9 9 L 9 9"),
	}}
	got, err := DocumentSource{Doc: doc}.ReadSelectedPathGeometry(context.Background())
	if err != nil {
		t.Fatalf("ReadSelectedPathGeometry error: %v", err)
	}
	want := []Geometry{{Name: "a", Origin: vector.Pt{X: 1, Y: 2}, Path: "M 0 0 L 1 1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentSourceGroup(t *testing.T) {
	doc := &vector.Document{Selection: []vector.Node{{
		Type: vector.TypeGroup,
		Name: "g",
		Children: []vector.Node{
			vec("first", 10, 10, "M 0 0 L 1 0"),
			{Type: "RECTANGLE", Name: "bg"},
			vec("second", 20, 20, "M 0 0 L 0 1"),
		},
	}}}
	got, err := DocumentSource{Doc: doc}.ReadSelectedPathGeometry(context.Background())
	if err != nil {
		t.Fatalf("ReadSelectedPathGeometry error: %v", err)
	}
	want := []Geometry{
		{Name: "first", Origin: vector.Pt{X: 10, Y: 10}, Path: "M 0 0 L 1 0"},
		{Name: "second", Origin: vector.Pt{X: 20, Y: 20}, Path: "M 0 0 L 0 1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  *vector.Document
		want error
	}{
		{"nil document", nil, ErrEmptySelection},
		{"empty selection", &vector.Document{}, ErrEmptySelection},
		{"rectangle", &vector.Document{Selection: []vector.Node{{Type: "RECTANGLE"}}}, ErrUnsupportedShape},
		{"vector without paths", &vector.Document{Selection: []vector.Node{vec("v", 0, 0)}}, ErrUnsupportedShape},
		{"group without vectors", &vector.Document{Selection: []vector.Node{{Type: vector.TypeGroup, Children: []vector.Node{{Type: "TEXT"}}}}}, ErrUnsupportedShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DocumentSource{Doc: tt.doc}.ReadSelectedPathGeometry(context.Background())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPathSource(t *testing.T) {
	got, err := PathSource{Origin: vector.Pt{X: 3, Y: 4}, Path: "M 0 0 L 1 1"}.ReadSelectedPathGeometry(context.Background())
	if err != nil {
		t.Fatalf("ReadSelectedPathGeometry error: %v", err)
	}
	if len(got) != 1 || got[0].Origin != (vector.Pt{X: 3, Y: 4}) || got[0].Path != "M 0 0 L 1 1" {
		t.Fatalf("unexpected geometry: %+v", got)
	}
}
