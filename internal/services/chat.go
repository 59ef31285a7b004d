package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindease/mindease-backend/internal/data/repos"
	types "github.com/mindease/mindease-backend/internal/domain"
	domainchat "github.com/mindease/mindease-backend/internal/domain/chat"
	"github.com/mindease/mindease-backend/internal/modules/companion"
	"github.com/mindease/mindease-backend/internal/observability"
	"github.com/mindease/mindease-backend/internal/pkg/dbctx"
	"github.com/mindease/mindease-backend/internal/platform/apierr"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

const (
	WelcomeMessage = "Hi! I'm your mental wellness companion. I'm here to listen and support you. How are you feeling today?"

	// DefaultSessionMood is stored when a session is opened without a mood.
	DefaultSessionMood = "neutral"

	chatHistoryLimit = 10
)

type SendMessageInput struct {
	SessionID uuid.UUID
	Message   string
	Mood      string
}

// ChatReply is the body of POST /api/chatbot/chat.
type ChatReply struct {
	Message string            `json:"message"`
	Emotion companion.Emotion `json:"emotion"`
	Session ChatReplySession  `json:"session"`
}

type ChatReplySession struct {
	ID   uuid.UUID `json:"id"`
	Mood string    `json:"mood"`
}

type ChatService interface {
	CreateSession(ctx context.Context, mood string) (*types.ChatSession, error)
	SendMessage(ctx context.Context, in SendMessageInput) (*ChatReply, error)
	History(ctx context.Context) ([]*types.SessionSummary, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error)
}

type chatService struct {
	db          *gorm.DB
	log         *logger.Logger
	sessionRepo repos.ChatSessionRepo
	messageRepo repos.ChatMessageRepo
	replier     *companion.Replier
	metrics     *observability.Metrics
	now         func() time.Time
}

func NewChatService(
	db *gorm.DB,
	log *logger.Logger,
	sessionRepo repos.ChatSessionRepo,
	messageRepo repos.ChatMessageRepo,
	replier *companion.Replier,
	metrics *observability.Metrics,
) ChatService {
	return &chatService{
		db:          db,
		log:         log.With("service", "ChatService"),
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		replier:     replier,
		metrics:     metrics,
		now:         time.Now,
	}
}

func (s *chatService) CreateSession(ctx context.Context, mood string) (*types.ChatSession, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if mood == "" {
		mood = DefaultSessionMood
	}
	now := s.now().UTC()
	session := &types.ChatSession{
		UserID:        userID,
		Title:         domainchat.DefaultSessionTitle,
		Mood:          mood,
		MessageCount:  1,
		LastMessageAt: now,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := s.sessionRepo.Create(dbc, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		welcome := &types.ChatMessage{
			SessionID: session.ID,
			Seq:       0,
			Role:      domainchat.RoleAssistant,
			Content:   WelcomeMessage,
			Timestamp: now,
		}
		if _, err := s.messageRepo.Create(dbc, []*types.ChatMessage{welcome}); err != nil {
			return fmt.Errorf("create welcome message: %w", err)
		}
		session.Messages = []*types.ChatMessage{welcome}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SendMessage records one exchange. The reply is produced before the
// transaction opens so no row lock is held across a provider call.
func (s *chatService) SendMessage(ctx context.Context, in SendMessageInput) (*ChatReply, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	message := strings.TrimSpace(in.Message)
	if in.SessionID == uuid.Nil || message == "" {
		return nil, apierr.BadRequest("invalid_request", errors.New("sessionId and message are required"))
	}

	session, err := s.sessionRepo.GetByID(dbctx.Context{Ctx: ctx}, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil || session.UserID != userID {
		return nil, apierr.NotFound("chat session")
	}

	// Moods are pool keys and are matched exactly.
	mood := in.Mood
	replyMood := mood
	if replyMood == "" {
		replyMood = session.Mood
	}
	reply := s.replier.Reply(ctx, userID, message, replyMood)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		locked, err := s.sessionRepo.LockByID(dbc, session.ID)
		if err != nil {
			return fmt.Errorf("lock session: %w", err)
		}
		if locked == nil {
			return apierr.NotFound("chat session")
		}
		now := s.now().UTC()
		seq := locked.MessageCount
		rows := []*types.ChatMessage{
			{
				SessionID: locked.ID,
				Seq:       seq,
				Role:      domainchat.RoleUser,
				Content:   message,
				Timestamp: now,
			},
			{
				SessionID: locked.ID,
				Seq:       seq + 1,
				Role:      domainchat.RoleAssistant,
				Content:   reply.Text,
				Emotion:   string(reply.Emotion),
				Timestamp: now,
			},
		}
		if _, err := s.messageRepo.Create(dbc, rows); err != nil {
			return fmt.Errorf("append messages: %w", err)
		}
		updates := map[string]interface{}{
			"message_count":   seq + 2,
			"last_message_at": now,
		}
		if mood != "" {
			updates["mood"] = mood
		}
		if err := s.sessionRepo.UpdateFields(dbc, locked.ID, updates); err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncChatReply(reply.Source)
	s.log.Debug("chat exchange recorded",
		"session_id", session.ID.String(),
		"source", reply.Source,
		"emotion", string(reply.Emotion),
	)
	sessionMood := session.Mood
	if mood != "" {
		sessionMood = mood
	}
	return &ChatReply{
		Message: reply.Text,
		Emotion: reply.Emotion,
		Session: ChatReplySession{ID: session.ID, Mood: sessionMood},
	}, nil
}

func (s *chatService) History(ctx context.Context) ([]*types.SessionSummary, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.sessionRepo.ListSummaries(dbctx.Context{Ctx: ctx}, userID, chatHistoryLimit)
}

func (s *chatService) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.GetWithMessages(dbctx.Context{Ctx: ctx}, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil || session.UserID != userID {
		return nil, apierr.NotFound("chat session")
	}
	return session, nil
}
