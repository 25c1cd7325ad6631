/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package host

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"

	applog "g2dgen/internal/log"
)

// Message types sent by the UI panel.
const (
	MsgGenerateCode = "generate-code"
	MsgShowToast    = "show-toast"
	MsgCancel       = "cancel"
)

// Message is one request from the UI panel.
type Message struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// Session relays UI messages to the generator and the notifier until the UI
// cancels it or the selection cannot be converted at all.
type Session struct {
	gen    *Generator
	notify Notifier
	log    *slog.Logger
	closed bool
}

func NewSession(gen *Generator, n Notifier) *Session {
	return &Session{gen: gen, notify: n, log: applog.WithComponent("session")}
}

func (s *Session) Closed() bool { return s.closed }

// Handle processes one message. Unknown types are ignored.
func (s *Session) Handle(ctx context.Context, m Message) error {
	if s.closed {
		return ErrSessionClosed
	}
	switch m.Type {
	case MsgGenerateCode:
		_, err := s.gen.Generate(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrEmptySelection) || errors.Is(err, ErrUnsupportedShape) {
			// Nothing convertible is selected; the panel is closed with a hint.
			s.closed = true
			_ = s.notify.Notify(ctx, ErrUnsupportedShape.Error())
			return err
		}
		_ = s.notify.Notify(ctx, err.Error())
		return err
	case MsgShowToast:
		return s.notify.Notify(ctx, m.Message)
	case MsgCancel:
		s.closed = true
		return nil
	default:
		s.log.Debug("ignoring message", slog.String("type", m.Type))
		return nil
	}
}

// Serve reads JSON-lines messages from r until EOF, cancel, or ctx is done.
// Failed messages are logged and do not end the session.
func (s *Session) Serve(ctx context.Context, r io.Reader) error {
	l := applog.WithOperation(s.log, "serve")
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var m Message
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			l.Warn("bad message", slog.Any("err", err))
			continue
		}
		if err := s.Handle(ctx, m); err != nil {
			l.Warn("message failed", slog.String("type", m.Type), slog.Any("err", err))
		}
		if s.closed {
			l.Info("session closed")
			return nil
		}
	}
	return sc.Err()
}
