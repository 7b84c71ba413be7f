// Package testutils provides shared testing utilities across the application.
package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gaurav-prasanna/linkpipe/core"
	"github.com/gaurav-prasanna/linkpipe/logger"
)

// MockChatModel is a mock implementation of core.ChatModel.
type MockChatModel struct {
	mock.Mock
}

var _ core.ChatModel = (*MockChatModel)(nil)

// Generate records the call and returns the configured reply.
func (m *MockChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// StubChatModel always answers with Reply (or Err) and remembers the prompts it saw.
type StubChatModel struct {
	Reply   string
	Err     error
	Prompts []string
}

// Generate returns the canned reply.
func (s *StubChatModel) Generate(_ context.Context, prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	return s.Reply, s.Err
}

// NewObservedLogger returns a logger whose entries can be inspected.
func NewObservedLogger(level zapcore.Level) (logger.Logger, *observer.ObservedLogs) {
	obsCore, logs := observer.New(level)
	return logger.NewFromZap(zap.New(obsCore)), logs
}
