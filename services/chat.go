package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"iot-site-backend/config"
	"iot-site-backend/content"
	"iot-site-backend/errors"
	"iot-site-backend/models"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	cache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// chatSession is the mutable server-side state behind one widget session.
// All field access goes through mu; pending is the typing timer for the
// in-flight bot reply, nil when idle.
type chatSession struct {
	mu      sync.Mutex
	data    models.ChatSession
	pending *time.Timer
}

// chatService implements ChatService. Sessions live in a TTL cache and are
// evicted wholesale after SessionTTL of inactivity; eviction cancels any
// pending typing timer.
type chatService struct {
	script    *content.ChatScript
	responder *Responder
	store     *cache.Cache
	metrics   *MetricsService
	logger    *log.Entry

	delayMin time.Duration
	delayMax time.Duration

	// rng feeds both the typing delay and the responder's continuation
	// pick, plus the ULID entropy source. Guarded by rngMu since the
	// monotonic entropy reader is not concurrency-safe.
	rngMu   sync.Mutex
	rng     *rand.Rand
	entropy *ulid.MonotonicEntropy

	// Injection points for tests
	now      func() time.Time
	schedule func(d time.Duration, f func()) *time.Timer
}

// NewChatService creates the chat widget backend from a chat script and
// configuration. A zero RandomSeed means time-seeded randomness.
func NewChatService(script *content.ChatScript, cfg config.ChatConfig, metrics *MetricsService) ChatService {
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &chatService{
		script:    script,
		responder: NewResponder(script, cfg.EscalationThreshold),
		store:     cache.New(cfg.SessionTTL, cfg.SessionCleanupInterval),
		metrics:   metrics,
		logger:    log.WithField("service", "chat"),
		delayMin:  cfg.TypingDelayMin,
		delayMax:  cfg.TypingDelayMax,
		rng:       rng,
		entropy:   ulid.Monotonic(rng, 0),
		now:       time.Now,
		schedule:  time.AfterFunc,
	}

	s.store.OnEvicted(func(_ string, value interface{}) {
		sess, ok := value.(*chatSession)
		if !ok {
			return
		}
		sess.mu.Lock()
		if sess.pending != nil {
			sess.pending.Stop()
			sess.pending = nil
		}
		sess.mu.Unlock()
	})

	return s
}

// OpenSession opens a chat session. With an empty sessionID a fresh session
// is created and the welcome message appended; a known sessionID reopens
// the existing session without replaying the welcome.
func (s *chatService) OpenSession(ctx context.Context, sessionID, pagePath string) (*models.ChatSession, error) {
	if sessionID != "" {
		if sess, ok := s.lookup(sessionID); ok {
			sess.mu.Lock()
			sess.data.PagePath = pagePath
			if sess.pending != nil {
				sess.data.State = models.ChatStateOpenTyping
			} else {
				sess.data.State = models.ChatStateOpenIdle
			}
			snapshot := snapshotSession(&sess.data)
			sess.mu.Unlock()
			return snapshot, nil
		}
		// Unknown or expired ID: fall through and start over.
	}

	sess := &chatSession{
		data: models.ChatSession{
			ID:        uuid.NewString(),
			PagePath:  pagePath,
			State:     models.ChatStateOpenEmpty,
			CreatedAt: s.now(),
		},
	}

	welcome := s.newMessage(models.MessageSenderBot, s.script.WelcomeText, s.script.WelcomeOptions, nil)
	sess.data.Messages = append(sess.data.Messages, welcome)
	sess.data.State = models.ChatStateOpenIdle

	s.store.Set(sess.data.ID, sess, cache.DefaultExpiration)

	s.logger.WithFields(log.Fields{
		"session_id": sess.data.ID,
		"page_path":  pagePath,
	}).Info("Chat session opened")

	return snapshotSession(&sess.data), nil
}

// GetSession returns a snapshot of the session's log, state and context
func (s *chatService) GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return nil, errSessionNotFound(sessionID)
	}

	sess.mu.Lock()
	snapshot := snapshotSession(&sess.data)
	sess.mu.Unlock()
	return snapshot, nil
}

// SendMessage appends a user turn, updates the conversation context and
// schedules exactly one bot reply after the typing delay. While that reply
// is pending, further sends fail with models.ErrReplyPending.
func (s *chatService) SendMessage(ctx context.Context, sessionID, text string, quickReply bool) (*models.ChatMessage, error) {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return nil, errSessionNotFound(sessionID)
	}

	sess.mu.Lock()
	if sess.data.State == models.ChatStateOpenTyping {
		sess.mu.Unlock()
		appErr := errors.NewConflictError(errors.ErrCodeReplyPending, "a reply is already being composed", models.ErrReplyPending)
		appErr.Details = "wait for is_typing to clear before sending again"
		return nil, appErr
	}

	userMsg := s.newMessage(models.MessageSenderUser, text, nil, nil)
	sess.data.Messages = append(sess.data.Messages, userMsg)

	// Context update precedes response selection: the responder sees the
	// post-increment question count.
	sess.data.Context.QuestionsAsked++

	input := RuleInput{
		Text:       text,
		Lower:      strings.ToLower(text),
		QuickReply: quickReply,
		PagePath:   sess.data.PagePath,
		Context:    sess.data.Context,
	}

	s.rngMu.Lock()
	reply, ruleName := s.responder.Respond(input, s.rng)
	s.rngMu.Unlock()

	if reply.Topic != "" {
		sess.data.Context.LastTopic = reply.Topic
		sess.data.Context.RecordInterest(reply.Topic)
	}
	if reply.Escalate && !sess.data.Context.NeedsHumanSupport {
		sess.data.Context.NeedsHumanSupport = true
		if s.metrics != nil {
			s.metrics.RecordEscalation()
		}
	}

	// The bot message is composed now so its ID orders right after the
	// user message; only its appearance in the log is delayed.
	botMsg := s.newMessage(models.MessageSenderBot, reply.Text, reply.Options, reply.Links)
	delay := s.typingDelay()

	sess.data.State = models.ChatStateOpenTyping
	sess.data.IsTyping = true
	sess.pending = s.schedule(delay, func() {
		sess.mu.Lock()
		sess.data.Messages = append(sess.data.Messages, botMsg)
		sess.data.IsTyping = false
		sess.pending = nil
		// A close while typing leaves the session closed; the reply
		// still lands in the log.
		if sess.data.State == models.ChatStateOpenTyping {
			sess.data.State = models.ChatStateOpenIdle
		}
		sess.mu.Unlock()
	})

	result := userMsg
	sess.mu.Unlock()

	// TTL refresh happens outside the session lock to keep lock order
	// one-way between the store and session mutexes.
	s.store.Set(sessionID, sess, cache.DefaultExpiration)

	if s.metrics != nil {
		s.metrics.RecordChatTurn(ruleName)
		s.metrics.RecordTypingDelay(delay)
	}
	s.logger.WithFields(log.Fields{
		"session_id":  sessionID,
		"rule":        ruleName,
		"quick_reply": quickReply,
	}).Debug("Chat turn handled")

	return &result, nil
}

// CloseSession hides the widget. The log and context stay in the store
// until TTL expiry, and a pending typing timer is left to run out.
func (s *chatService) CloseSession(ctx context.Context, sessionID string) error {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return errSessionNotFound(sessionID)
	}

	sess.mu.Lock()
	sess.data.State = models.ChatStateClosed
	sess.mu.Unlock()
	return nil
}

// errSessionNotFound builds the not-found AppError for a missing or
// expired session, wrapping models.ErrSessionNotFound.
func errSessionNotFound(sessionID string) error {
	appErr := errors.NewNotFoundError(errors.ErrCodeResourceNotFound, "chat session not found", models.ErrSessionNotFound)
	appErr.Details = sessionID
	return appErr
}

func (s *chatService) lookup(sessionID string) (*chatSession, bool) {
	value, ok := s.store.Get(sessionID)
	if !ok {
		return nil, false
	}
	sess, ok := value.(*chatSession)
	return sess, ok
}

// newMessage builds a message with a ULID identifier so lexicographic ID
// order equals generation order.
func (s *chatService) newMessage(sender models.MessageSender, text string, options []string, links []models.MessageLink) models.ChatMessage {
	now := s.now()

	s.rngMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
	s.rngMu.Unlock()

	return models.ChatMessage{
		ID:        id,
		Text:      text,
		Sender:    sender,
		Timestamp: now,
		Options:   options,
		Links:     links,
	}
}

// typingDelay picks a uniform delay in [delayMin, delayMax]
func (s *chatService) typingDelay() time.Duration {
	window := s.delayMax - s.delayMin
	if window <= 0 {
		return s.delayMin
	}

	s.rngMu.Lock()
	offset := time.Duration(s.rng.Int63n(int64(window) + 1))
	s.rngMu.Unlock()

	return s.delayMin + offset
}

// snapshotSession deep-copies the caller-visible session state. Must be
// called with the session lock held.
func snapshotSession(data *models.ChatSession) *models.ChatSession {
	snapshot := *data
	snapshot.Messages = make([]models.ChatMessage, len(data.Messages))
	copy(snapshot.Messages, data.Messages)
	for i := range snapshot.Messages {
		msg := &snapshot.Messages[i]
		if len(msg.Options) > 0 {
			msg.Options = append([]string(nil), msg.Options...)
		}
		if len(msg.Links) > 0 {
			msg.Links = append([]models.MessageLink(nil), msg.Links...)
		}
	}
	if len(data.Context.UserInterests) > 0 {
		snapshot.Context.UserInterests = make([]string, len(data.Context.UserInterests))
		copy(snapshot.Context.UserInterests, data.Context.UserInterests)
	}
	return &snapshot
}
