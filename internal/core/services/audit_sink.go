package services

import (
	"context"
	"log/slog"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
)

// slogAuditSink writes audit records as structured log lines on a dedicated
// logger. Recording never fails the business operation.
type slogAuditSink struct {
	logger *slog.Logger
}

// NewSlogAuditSink creates an audit sink backed by the given logger.
func NewSlogAuditSink(logger *slog.Logger) portssvc.AuditSink {
	return &slogAuditSink{logger: logger.With(slog.String("stream", "audit"))}
}

var _ portssvc.AuditSink = (*slogAuditSink)(nil)

func (s *slogAuditSink) Record(ctx context.Context, rec domain.AuditRecord) {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "audit",
		slog.String("actor", rec.Actor),
		slog.String("action", rec.Action),
		slog.String("entityType", rec.EntityType),
		slog.String("entityID", rec.EntityID),
		slog.Any("before", rec.Before),
		slog.Any("after", rec.After),
		slog.Time("at", rec.At),
	)
}
