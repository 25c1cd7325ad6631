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
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Text joins statements one per line with a trailing newline.
func Text(statements []string) string {
	if len(statements) == 0 {
		return ""
	}
	return strings.Join(statements, "\n") + "\n"
}

// WriterSink writes statements as plain text.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Publish(_ context.Context, statements []string) error {
	_, err := io.WriteString(s.W, Text(statements))
	return err
}

// FileSink replaces Path with the statements. The file is written to a temp
// file next to Path and renamed over it, so readers never see a partial file.
type FileSink struct {
	Path string
}

func (s FileSink) Publish(_ context.Context, statements []string) error {
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("output path is empty")
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(s.Path), os.Getpid(), rand.Int()))
	if err := writeFileSync(temp, []byte(Text(statements))); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("write temp output: %w", err)
	}
	// On Windows, replace by removing destination first if needed
	if _, err := os.Stat(s.Path); err == nil {
		_ = os.Remove(s.Path)
	}
	if err := os.Rename(temp, s.Path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}

// writeFileSync writes data to a file, ensures it is flushed to disk.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// Reply types posted back to the UI panel.
const (
	ReplyCodeGenerated = "code-generated"
	ReplyToast         = "toast"
)

// ToastTimeout is how long a notification stays visible.
const ToastTimeout = 5 * time.Second

// Reply is one JSON line sent to the UI panel.
type Reply struct {
	Type      string `json:"type"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	TimeoutMs int64  `json:"timeoutMs,omitempty"`
}

// Outbox writes replies as JSON lines. It is both the StatementSink and the
// Notifier of a relay session.
type Outbox struct {
	enc *json.Encoder
}

func NewOutbox(w io.Writer) *Outbox { return &Outbox{enc: json.NewEncoder(w)} }

func (o *Outbox) Publish(_ context.Context, statements []string) error {
	return o.enc.Encode(Reply{Type: ReplyCodeGenerated, Code: strings.Join(statements, "\n")})
}

func (o *Outbox) Notify(_ context.Context, message string) error {
	return o.enc.Encode(Reply{Type: ReplyToast, Message: message, TimeoutMs: ToastTimeout.Milliseconds()})
}
