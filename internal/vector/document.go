/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"
)

// The selection document mirrors what the design tool exposes for the current
// selection: vector nodes with their path data, and groups of nodes.

type NodeType string

const (
	TypeVector NodeType = "VECTOR"
	TypeGroup  NodeType = "GROUP"
)

type VectorPath struct {
	WindingRule string `json:"windingRule,omitempty"`
	Data        string `json:"data"`
}

// Node is a selected scene node. X and Y position the node in the document;
// path data of a vector is relative to that position.
type Node struct {
	Type        NodeType     `json:"type"`
	Name        string       `json:"name,omitempty"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	VectorPaths []VectorPath `json:"vectorPaths,omitempty"`
	Children    []Node       `json:"children,omitempty"`
}

func (n Node) Origin() Pt { return Pt{X: n.X, Y: n.Y} }

type Document struct {
	Selection []Node `json:"selection"`
}

//go:embed selection.schema.json
var selectionSchema []byte

// SchemaError lists every schema violation of a rejected document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "selection document does not match schema: " + strings.Join(e.Violations, "; ")
}

// LoadDocument reads and validates a selection document.
func LoadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read selection document: %w", err)
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(selectionSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate selection document: %w", err)
	}
	if !res.Valid() {
		se := &SchemaError{}
		for _, e := range res.Errors() {
			se.Violations = append(se.Violations, e.String())
		}
		return nil, se
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode selection document: %w", err)
	}
	return &doc, nil
}

// LoadDocumentFile loads a selection document from path.
func LoadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return LoadDocument(f)
}
