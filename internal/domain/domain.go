package domain

import (
	"github.com/mindease/mindease-backend/internal/domain/chat"
	"github.com/mindease/mindease-backend/internal/domain/content"
	"github.com/mindease/mindease-backend/internal/domain/therapist"
	"github.com/mindease/mindease-backend/internal/domain/user"
	"github.com/mindease/mindease-backend/internal/domain/wellness"
)

type User = user.User
type MoodEntry = user.MoodEntry

type WellnessPlan = wellness.WellnessPlan
type Activity = wellness.Activity
type Recommendation = wellness.Recommendation
type Progress = wellness.Progress

type ChatSession = chat.ChatSession
type ChatMessage = chat.ChatMessage
type SessionSummary = chat.SessionSummary

type Therapist = therapist.Therapist
type Article = content.Article
type ArticleLike = content.ArticleLike

// Models lists every persisted model in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&MoodEntry{},
		&WellnessPlan{},
		&ChatSession{},
		&ChatMessage{},
		&Therapist{},
		&Article{},
		&ArticleLike{},
	}
}
