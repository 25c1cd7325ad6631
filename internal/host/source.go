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

	"g2dgen/internal/vector"
)

// DocumentSource reads geometry from a selection document. Only the first
// selected node counts, as in the design tool.
type DocumentSource struct {
	Doc *vector.Document
}

func (s DocumentSource) ReadSelectedPathGeometry(_ context.Context) ([]Geometry, error) {
	if s.Doc == nil || len(s.Doc.Selection) == 0 {
		return nil, ErrEmptySelection
	}
	n := s.Doc.Selection[0]
	switch n.Type {
	case vector.TypeVector:
		g, err := vectorGeometry(n)
		if err != nil {
			return nil, err
		}
		return []Geometry{g}, nil
	case vector.TypeGroup:
		var out []Geometry
		for _, c := range n.Children {
			if c.Type != vector.TypeVector {
				continue
			}
			g, err := vectorGeometry(c)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("group %q has no vector children: %w", n.Name, ErrUnsupportedShape)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("node %q is a %s: %w", n.Name, n.Type, ErrUnsupportedShape)
	}
}

func vectorGeometry(n vector.Node) (Geometry, error) {
	if len(n.VectorPaths) == 0 {
		return Geometry{}, fmt.Errorf("vector %q has no path data: %w", n.Name, ErrUnsupportedShape)
	}
	return Geometry{Name: n.Name, Origin: n.Origin(), Path: n.VectorPaths[0].Data}, nil
}

// PathSource is a fixed single path, used when the path comes from the
// command line instead of a document.
type PathSource struct {
	Origin vector.Pt
	Path   string
}

func (s PathSource) ReadSelectedPathGeometry(_ context.Context) ([]Geometry, error) {
	return []Geometry{{Name: "path", Origin: s.Origin, Path: s.Path}}, nil
}
