package webchat

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	"github.com/hotelmadagascar/concierge/internal/catalog"
	"github.com/hotelmadagascar/concierge/internal/chatbot"
	"github.com/hotelmadagascar/concierge/internal/observability/metrics"
	"github.com/hotelmadagascar/concierge/internal/records"
	"github.com/hotelmadagascar/concierge/internal/session"
	"github.com/hotelmadagascar/concierge/pkg/logging"
)

// Engine turns an inbound message and the current conversation context into
// a reply.
type Engine interface {
	ProcessTurn(conv chatbot.Context, message string) (chatbot.Context, chatbot.Turn)
	Suggestions(key string, conv chatbot.Context) []string
}

// SessionStore persists conversation contexts and transcripts.
type SessionStore interface {
	LoadContext(ctx context.Context, sessionID string) (*chatbot.Context, error)
	SaveContext(ctx context.Context, sessionID string, conv chatbot.Context) error
	AppendMessage(ctx context.Context, sessionID string, msg session.Message) error
	History(ctx context.Context, sessionID string) ([]session.Message, error)
}

// Recorder persists the records produced by completed conversations.
type Recorder interface {
	AddBooking(ctx context.Context, b records.Booking) (records.Booking, error)
	AddContactRequest(ctx context.Context, c records.ContactRequest) (records.ContactRequest, error)
}

// Handler manages web chat connections and messages.
type Handler struct {
	engine   Engine
	sessions SessionStore
	recorder Recorder
	catalog  *catalog.Store
	metrics  *metrics.ChatMetrics
	logger   *logging.Logger

	// DefaultLang is used when a request does not carry a language. Empty
	// means English.
	DefaultLang string

	mu    sync.Mutex
	locks map[string]*sessionLock

	wsMu    sync.RWMutex
	wsConns map[string]*wsConn // sessionID -> active connection
}

type wsConn struct {
	conn *websocket.Conn
}

// NewHandler creates a web chat handler. The recorder and metrics may be nil;
// turns still complete, their persistence side effects are skipped.
func NewHandler(engine Engine, sessions SessionStore, recorder Recorder, store *catalog.Store, m *metrics.ChatMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		engine:   engine,
		sessions: sessions,
		recorder: recorder,
		catalog:  store,
		metrics:  m,
		logger:   logger,
		locks:    make(map[string]*sessionLock),
		wsConns:  make(map[string]*wsConn),
	}
}

// sessionLock serializes turns within one session so that concurrent messages
// cannot interleave context reads and writes. Entries are reference counted
// and removed once no turn holds or waits on them.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (h *Handler) lockSession(sessionID string) *sessionLock {
	h.mu.Lock()
	l, ok := h.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		h.locks[sessionID] = l
	}
	l.refs++
	h.mu.Unlock()
	l.mu.Lock()
	return l
}

func (h *Handler) unlockSession(sessionID string, l *sessionLock) {
	l.mu.Unlock()
	h.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(h.locks, sessionID)
	}
	h.mu.Unlock()
}

func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}

// MessageRequest is what the widget sends on the HTTP fallback.
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Lang      string `json:"lang,omitempty"`
}

// MessageResponse is one completed conversation turn.
type MessageResponse struct {
	SessionID   string                  `json:"session_id"`
	Reply       string                  `json:"reply"`
	State       string                  `json:"state"`
	Slots       map[string]string       `json:"slots"`
	Suggestions []string                `json:"suggestions"`
	Payload     *chatbot.RichPayload    `json:"payload,omitempty"`
	Action      string                  `json:"action,omitempty"`
	RecordID    string                  `json:"record_id,omitempty"`
	Intent      string                  `json:"intent"`
	Confidence  float64                 `json:"confidence"`
	Contact     *chatbot.ContactDetails `json:"contact,omitempty"`
}

// processTurn runs one message through the engine, executes any persistence
// action the turn requests, and saves the updated context and transcript.
func (h *Handler) processTurn(ctx context.Context, sessionID, text, lang string) (MessageResponse, error) {
	lock := h.lockSession(sessionID)
	defer h.unlockSession(sessionID, lock)

	started := time.Now()

	conv, err := h.sessions.LoadContext(ctx, sessionID)
	if err != nil {
		return MessageResponse{}, err
	}
	if conv == nil {
		if lang == "" {
			lang = h.DefaultLang
		}
		fresh := chatbot.NewContext(lang)
		conv = &fresh
	} else if lang != "" {
		// The widget sends the current toggle with every message, so a
		// mid-session switch takes effect on this turn.
		if lang != "es" {
			lang = "en"
		}
		conv.Lang = lang
	}

	newConv, turn := h.engine.ProcessTurn(*conv, text)
	reply := turn.Text.Pick(newConv.Lang)

	resp := MessageResponse{
		SessionID:   sessionID,
		Reply:       reply,
		State:       turn.State,
		Slots:       turn.Slots,
		Suggestions: turn.Suggestions,
		Payload:     turn.Payload,
		Action:      string(turn.Action),
		Intent:      turn.Intent,
		Confidence:  turn.Confidence,
		Contact:     turn.Contact,
	}
	resp.RecordID = h.executeAction(ctx, turn)

	now := time.Now().UTC()
	if err := h.sessions.AppendMessage(ctx, sessionID, session.Message{
		Role: "user", Text: text, Lang: newConv.Lang, At: now,
	}); err != nil {
		h.logger.Warn("webchat: failed to append user message", "session_id", sessionID, "error", err)
	}
	if err := h.sessions.AppendMessage(ctx, sessionID, session.Message{
		Role: "assistant", Text: reply, Lang: newConv.Lang, At: now,
	}); err != nil {
		h.logger.Warn("webchat: failed to append reply", "session_id", sessionID, "error", err)
	}

	if err := h.sessions.SaveContext(ctx, sessionID, newConv); err != nil {
		return MessageResponse{}, err
	}

	h.metrics.ObserveTurn(turn.Intent, string(turn.Action))
	h.metrics.ObserveTurnLatency(newConv.Lang, time.Since(started).Seconds())
	return resp, nil
}

// executeAction persists the record a turn asks for and returns its id.
func (h *Handler) executeAction(ctx context.Context, turn chatbot.Turn) string {
	switch turn.Action {
	case chatbot.ActionSaveBooking:
		if h.recorder == nil {
			h.logger.Warn("webchat: no recorder configured, booking not saved")
			return ""
		}
		serviceName := turn.ServiceID
		if svc := h.catalog.ServiceByID(turn.ServiceID); svc != nil {
			serviceName = svc.Name.EN
		}
		saved, err := h.recorder.AddBooking(ctx, records.BookingFromSlots(turn.Slots, serviceName))
		if err != nil {
			h.logger.Error("webchat: failed to save booking", "service_id", turn.ServiceID, "error", err)
			return ""
		}
		h.metrics.ObserveBookingSaved()
		h.logger.Info("webchat: booking saved", "booking_id", saved.ID, "service_id", saved.ServiceID)
		return saved.ID
	case chatbot.ActionSaveContactRequest:
		if h.recorder == nil || turn.Contact == nil {
			if h.recorder == nil {
				h.logger.Warn("webchat: no recorder configured, contact request not saved")
			}
			return ""
		}
		saved, err := h.recorder.AddContactRequest(ctx, records.ContactRequest{
			Phone:         turn.Contact.Phone,
			PreferredTime: turn.Contact.PreferredTime,
		})
		if err != nil {
			h.logger.Error("webchat: failed to save contact request", "error", err)
			return ""
		}
		h.metrics.ObserveContactRequestSaved()
		h.logger.Info("webchat: contact request saved", "request_id", saved.ID)
		return saved.ID
	}
	return ""
}

// HandleMessage is the HTTP endpoint for sending messages.
// POST /chat/message
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = generateSessionID()
	}

	resp, err := h.processTurn(r.Context(), req.SessionID, req.Text, req.Lang)
	if err != nil {
		h.logger.Error("webchat: failed to process message", "session_id", req.SessionID, "error", err)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// HistoryMessage is a simplified message for history responses.
type HistoryMessage struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// HandleHistory returns the chat transcript for a session.
// GET /chat/history?session=...
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	msgs, err := h.sessions.History(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("webchat: failed to load history", "session_id", sessionID, "error", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	history := make([]HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, HistoryMessage{
			Role:      m.Role,
			Text:      m.Text,
			Timestamp: m.At.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"messages": history})
}

// HandleSuggestions returns quick replies for the session's current state.
// GET /chat/suggestions?session=...&lang=...
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = h.DefaultLang
	}

	conv := chatbot.NewContext(lang)
	if sessionID != "" {
		stored, err := h.sessions.LoadContext(r.Context(), sessionID)
		if err != nil {
			h.logger.Error("webchat: failed to load context", "session_id", sessionID, "error", err)
			http.Error(w, "failed to load session", http.StatusInternalServerError)
			return
		}
		if stored != nil {
			conv = *stored
		}
	}

	key := conv.AwaitingSlot
	if key == "" {
		key = string(conv.State)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"suggestions": h.engine.Suggestions(key, conv),
	})
}

// InboundMessage is what the widget sends over WebSocket.
type InboundMessage struct {
	Type      string `json:"type"` // "message", "ping"
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Lang      string `json:"lang,omitempty"`
}

// OutboundMessage is what we send to the widget.
type OutboundMessage struct {
	Type      string           `json:"type"` // "message", "session", "history", "pong", "error"
	SessionID string           `json:"session_id,omitempty"`
	Turn      *MessageResponse `json:"turn,omitempty"`
	Messages  []HistoryMessage `json:"messages,omitempty"`
	Text      string           `json:"text,omitempty"`
}

// HandleWebSocket upgrades to WebSocket and handles real-time messaging.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = generateSessionID()
	}
	lang := r.URL.Query().Get("lang")

	_ = websocket.JSON.Send(conn, OutboundMessage{Type: "session", SessionID: sessionID})

	if msgs, err := h.sessions.History(r.Context(), sessionID); err == nil && len(msgs) > 0 {
		history := make([]HistoryMessage, 0, len(msgs))
		for _, m := range msgs {
			history = append(history, HistoryMessage{
				Role:      m.Role,
				Text:      m.Text,
				Timestamp: m.At.Format(time.RFC3339),
			})
		}
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "history", Messages: history})
	}

	wsc := &wsConn{conn: conn}
	h.wsMu.Lock()
	h.wsConns[sessionID] = wsc
	h.wsMu.Unlock()
	defer func() {
		h.wsMu.Lock()
		if h.wsConns[sessionID] == wsc {
			delete(h.wsConns, sessionID)
		}
		h.wsMu.Unlock()
	}()

	h.logger.Info("webchat: connection opened", "session_id", sessionID)

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("webchat: connection closed", "session_id", sessionID, "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, OutboundMessage{Type: "pong"})
			continue
		}
		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}
		if msg.Lang != "" {
			lang = msg.Lang
		}

		resp, err := h.processTurn(r.Context(), sessionID, msg.Text, lang)
		if err != nil {
			h.logger.Error("webchat: failed to process message", "session_id", sessionID, "error", err)
			_ = websocket.JSON.Send(conn, OutboundMessage{
				Type: "error",
				Text: "Sorry, something went wrong. Please try again.",
			})
			continue
		}
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "message", SessionID: sessionID, Turn: &resp})
	}
}
