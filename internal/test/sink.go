package test

import (
	"context"

	"github.com/polkiloo/celengan/internal/domain/model"
)

// SinkCall captures one notification dispatch.
type SinkCall struct {
	UserID   int64
	Title    string
	Message  string
	Category model.NotificationCategory
}

// SinkStub records notifications sent during tests.
type SinkStub struct {
	Calls []SinkCall
}

// Notify stores the call for later assertions.
func (s *SinkStub) Notify(ctx context.Context, userID int64, title, message string, category model.NotificationCategory) {
	s.Calls = append(s.Calls, SinkCall{UserID: userID, Title: title, Message: message, Category: category})
}
