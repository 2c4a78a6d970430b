package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
)

// ExportCSV renders the session's action items as a CSV document.
func (uc *implUseCase) ExportCSV(ctx context.Context, sessionID string) (session.ExportOutput, error) {
	s, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return session.ExportOutput{}, err
	}

	data, err := uc.exporter.ActionItemsCSV(s)
	if err != nil {
		return session.ExportOutput{}, err
	}

	return session.ExportOutput{
		FileName:    uc.exporter.CSVFileName(s),
		ContentType: "text/csv",
		Data:        data,
	}, nil
}

// ExportTranscript renders the session as a plain-text transcript document.
func (uc *implUseCase) ExportTranscript(ctx context.Context, sessionID string) (session.ExportOutput, error) {
	s, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return session.ExportOutput{}, err
	}

	return session.ExportOutput{
		FileName:    uc.exporter.TranscriptFileName(s),
		ContentType: "text/plain",
		Data:        uc.exporter.TranscriptText(s),
	}, nil
}
