/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `{
  "selection": [
    {"type": "GROUP", "name": "icon", "children": [
      {"type": "VECTOR", "name": "stem", "x": 10, "y": 20,
       "vectorPaths": [{"windingRule": "NONZERO", "data": "M 0 0 L 10 0"}]},
      {"type": "RECTANGLE", "name": "bg", "x": 0, "y": 0}
    ]}
  ]
}`

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("LoadDocument error: %v", err)
	}
	if len(doc.Selection) != 1 || doc.Selection[0].Type != TypeGroup {
		t.Fatalf("unexpected selection: %+v", doc.Selection)
	}
	kids := doc.Selection[0].Children
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	if kids[0].Origin() != (Pt{10, 20}) {
		t.Fatalf("unexpected origin: %+v", kids[0].Origin())
	}
	if kids[0].VectorPaths[0].Data != "M 0 0 L 10 0" {
		t.Fatalf("unexpected path data: %q", kids[0].VectorPaths[0].Data)
	}
}

func TestLoadDocumentSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing selection": `{}`,
		"node without type": `{"selection": [{"x": 1}]}`,
		"path without data": `{"selection": [{"type": "VECTOR", "vectorPaths": [{}]}]}`,
		"bad winding rule":  `{"selection": [{"type": "VECTOR", "vectorPaths": [{"data": "M 0 0", "windingRule": "ODD"}]}]}`,
		"string coordinate": `{"selection": [{"type": "VECTOR", "x": "1"}]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadDocument(strings.NewReader(in))
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
			if len(se.Violations) == 0 {
				t.Fatalf("expected at least one violation")
			}
		})
	}
}

func TestLoadDocumentInvalidJSON(t *testing.T) {
	_, err := LoadDocument(strings.NewReader(`{"selection": [`))
	if err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
	var se *SchemaError
	if errors.As(err, &se) {
		t.Fatalf("truncated JSON should not be reported as schema violation")
	}
}

func TestLoadDocumentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := LoadDocumentFile(path)
	if err != nil {
		t.Fatalf("LoadDocumentFile error: %v", err)
	}
	if doc.Selection[0].Name != "icon" {
		t.Fatalf("unexpected name: %q", doc.Selection[0].Name)
	}
	if _, err := LoadDocumentFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
