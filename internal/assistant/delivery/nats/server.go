// Package nats serves assistant chat over NATS request/reply.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"zitta/config"
	"zitta/internal/assistant"
	"zitta/pkg/log"
)

// Server answers chat requests published on one subject.
type Server struct {
	conn    *nats.Conn
	sub     *nats.Subscription
	subject string
	h       handler
	l       log.Logger
}

// Connect dials the NATS server named in cfg.
func Connect(ctx context.Context, cfg config.NATSConfig, name string, uc assistant.UseCase, l log.Logger) (*Server, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	conn, err := nats.Connect(cfg.URL,
		nats.Name(name),
		nats.Timeout(timeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixConnect, err)
	}
	l.Infof(ctx, "%s: connected to %s", LogPrefixConnect, cfg.URL)

	subject := cfg.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	return &Server{
		conn:    conn,
		subject: subject,
		h:       newHandler(uc, l, timeout),
		l:       l,
	}, nil
}

// Start subscribes to the chat subject.
func (s *Server) Start() error {
	sub, err := s.conn.Subscribe(s.subject, s.handleChat)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", s.subject, err)
	}
	s.sub = sub
	s.l.Infof(context.Background(), "%s: subscribed to %s", LogPrefixConnect, s.subject)
	return nil
}

func (s *Server) handleChat(msg *nats.Msg) {
	ctx := context.Background()
	resp := s.h.process(ctx, msg.Data)

	data, err := json.Marshal(resp)
	if err != nil {
		s.l.Errorf(ctx, "%s: marshal response: %v", LogPrefixHandle, err)
		return
	}
	if err := msg.Respond(data); err != nil {
		s.l.Warnf(ctx, "%s: respond: %v", LogPrefixHandle, err)
	}
}

// Close drains in-flight requests and closes the connection.
func (s *Server) Close() error {
	if s.conn == nil {
		return nil
	}
	if err := s.conn.Drain(); err != nil {
		s.conn.Close()
		return err
	}
	return nil
}
