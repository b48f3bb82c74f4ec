package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/offering_tracker/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	newID func(prefix string) string
	now   func() time.Time
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(fn func(prefix string) string) Option {
	return func(b *BaseService) {
		b.newID = fn
	}
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(b *BaseService) {
		b.now = fn
	}
}

func newBaseService(opts ...Option) BaseService {
	b := BaseService{
		newID: func(prefix string) string { return prefix + uuid.NewString() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// NewID returns a fresh identifier starting with prefix.
func (s *BaseService) NewID(prefix string) string {
	return s.newID(prefix)
}

// Now returns the current time.
func (s *BaseService) Now() time.Time {
	return s.now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs an expected failure such as a rejected input
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logFailure logs err as a warning when it is an expected domain outcome and as an error otherwise.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if isExpected(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
