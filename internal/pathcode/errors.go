/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package pathcode

import (
	"errors"
	"fmt"
)

// ErrorKind classifies decode and emit failures.
type ErrorKind uint8

const (
	// UnsupportedCommand: a command letter has no kind mapping.
	UnsupportedCommand ErrorKind = iota + 1
	// MalformedArguments: arguments are not numbers or have the wrong count.
	MalformedArguments
	// TruncatedSegment: a line or curve point lacks the points it consumes.
	TruncatedSegment
	// TruncatedPath: a move is the final token, so its kind cannot be known.
	TruncatedPath
)

var (
	ErrUnsupportedCommand = errors.New("unsupported path command")
	ErrMalformedArguments = errors.New("malformed path arguments")
	ErrTruncatedSegment   = errors.New("truncated segment")
	ErrTruncatedPath      = errors.New("truncated path")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnsupportedCommand:
		return ErrUnsupportedCommand
	case MalformedArguments:
		return ErrMalformedArguments
	case TruncatedSegment:
		return ErrTruncatedSegment
	case TruncatedPath:
		return ErrTruncatedPath
	}
	return nil
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error reports where decoding or emission failed. Index is the token index
// for decode errors and the point index for emit errors.
type Error struct {
	Kind    ErrorKind
	Index   int
	Command string
	Message string
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Command != "" {
		s += fmt.Sprintf(" %q", e.Command)
	}
	s += fmt.Sprintf(" at %d", e.Index)
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}
