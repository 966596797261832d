package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/hotelmadagascar/concierge/internal/chatbot"
)

const defaultTTL = 24 * time.Hour

// maxHistory caps the stored transcript per session.
const maxHistory = 200

// Message is one transcript entry in a chat session.
type Message struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	Lang string    `json:"lang,omitempty"`
	At   time.Time `json:"at"`
}

// Store keeps conversation contexts and chat transcripts in redis, keyed by
// session id. Contexts expire with the session TTL.
type Store struct {
	redis  *redis.Client
	tracer trace.Tracer
	ttl    time.Duration
}

// New builds a session store. A zero ttl falls back to 24 hours.
func New(client *redis.Client, ttl time.Duration) *Store {
	if client == nil {
		panic("session: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		redis:  client,
		tracer: otel.Tracer("concierge.internal.session"),
		ttl:    ttl,
	}
}

// SaveContext persists the conversation context for a session.
func (s *Store) SaveContext(ctx context.Context, sessionID string, conv chatbot.Context) error {
	ctx, span := s.tracer.Start(ctx, "session.save_context")
	defer span.End()

	data, err := json.Marshal(conv)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to marshal context: %w", err)
	}
	if err := s.redis.Set(ctx, contextKey(sessionID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to persist context: %w", err)
	}
	return nil
}

// LoadContext returns the stored context for a session, or nil when the
// session is new or expired.
func (s *Store) LoadContext(ctx context.Context, sessionID string) (*chatbot.Context, error) {
	ctx, span := s.tracer.Start(ctx, "session.load_context")
	defer span.End()

	data, err := s.redis.Get(ctx, contextKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("session: failed to load context: %w", err)
	}

	var conv chatbot.Context
	if err := json.Unmarshal(data, &conv); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("session: failed to decode context: %w", err)
	}
	return &conv, nil
}

// AppendMessage adds one transcript entry to a session's history and trims it
// to the newest maxHistory entries.
func (s *Store) AppendMessage(ctx context.Context, sessionID string, msg Message) error {
	ctx, span := s.tracer.Start(ctx, "session.append_message")
	defer span.End()

	if msg.At.IsZero() {
		msg.At = time.Now().UTC()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to marshal message: %w", err)
	}

	key := historyKey(sessionID)
	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -maxHistory, -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("session: failed to append message: %w", err)
	}
	return nil
}

// History returns a session's transcript, oldest first.
func (s *Store) History(ctx context.Context, sessionID string) ([]Message, error) {
	ctx, span := s.tracer.Start(ctx, "session.load_history")
	defer span.End()

	entries, err := s.redis.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("session: failed to load history: %w", err)
	}

	out := make([]Message, 0, len(entries))
	for _, entry := range entries {
		var msg Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("session: failed to decode message: %w", err)
		}
		out = append(out, msg)
	}
	return out, nil
}

func contextKey(sessionID string) string {
	return fmt.Sprintf("session:%s:context", sessionID)
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("session:%s:history", sessionID)
}
