package commands

import (
	"context"
	"time"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

const commandTimeout = 60 * time.Second

// HistoryLoader reads records from a local path or an s3:// location
type HistoryLoader interface {
	Load(ctx context.Context, location string) ([]domain.HistoricalRecord, error)
}

// ReportHandler renders a finished report
type ReportHandler interface {
	Handle(report *domain.Report) error
}
