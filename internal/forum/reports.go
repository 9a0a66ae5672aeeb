package forum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/placementcell/backend/internal/models"
	"go.uber.org/zap"
)

// FileReport records a complaint against a post, comment or reply. All
// complaints about one target share a single report document; the same
// reporter may contribute at most one entry per target.
func (s *Service) FileReport(ctx context.Context, actor models.Actor, kind models.TargetKind, targetID, reason string) (*models.Report, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown target kind %q: %w", kind, ErrValidation)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("report reason is required: %w", ErrValidation)
	}
	if err := s.targetExists(ctx, kind, targetID); err != nil {
		return nil, err
	}

	entry := models.ReportEntry{
		Reason:    strings.TrimSpace(reason),
		Reporter:  actor,
		CreatedAt: time.Now(),
	}

	report, err := s.reports.GetByTarget(ctx, kind, targetID)
	switch {
	case err == nil:
		for _, e := range report.Entries {
			if e.Reporter.ID == actor.ID {
				return nil, fmt.Errorf("target already reported by %s: %w", actor.ID, ErrConflict)
			}
		}
		if err := s.reports.AddEntry(ctx, report.ID, entry); err != nil {
			return nil, fmt.Errorf("forum: failed appending report entry: %w", err)
		}
		report.Entries = append(report.Entries, entry)
		return report, nil
	case isGone(err):
		report = &models.Report{
			ID:         newID(),
			TargetKind: kind,
			TargetID:   targetID,
			Entries:    []models.ReportEntry{entry},
			Status:     models.ReportPending,
			CreatedAt:  entry.CreatedAt,
			UpdatedAt:  entry.CreatedAt,
		}
		if err := s.reports.Create(ctx, report); err != nil {
			return nil, fmt.Errorf("forum: failed creating report: %w", err)
		}
		return report, nil
	default:
		return nil, fmt.Errorf("forum: failed looking up report: %w", err)
	}
}

// GetReport returns a single report. Staff only.
func (s *Service) GetReport(ctx context.Context, actor models.Actor, id string) (*models.Report, error) {
	if !actor.IsStaff() {
		return nil, fmt.Errorf("only staff may view reports: %w", ErrForbidden)
	}
	return s.reports.GetByID(ctx, id)
}

// ListReports returns a page of reports, optionally filtered by status.
// Staff only.
func (s *Service) ListReports(ctx context.Context, actor models.Actor, status models.ReportStatus, opts ListOptions) ([]models.Report, error) {
	if !actor.IsStaff() {
		return nil, fmt.Errorf("only staff may view reports: %w", ErrForbidden)
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown report status %q: %w", status, ErrValidation)
	}
	return s.reports.List(ctx, status, opts)
}

// ResolveReport is the moderator action: delete the reported entity
// through the cascade engine, then remove the report record. The per
// entity author-or-staff check is bypassed because the moderator has
// already been verified here; if the target is already gone the report is
// still removed and the call succeeds.
func (s *Service) ResolveReport(ctx context.Context, actor models.Actor, id string) error {
	if !actor.IsStaff() {
		return fmt.Errorf("only staff may resolve reports: %w", ErrForbidden)
	}
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cascadeTarget(ctx, report.TargetKind, report.TargetID); err != nil {
		if !isGone(err) {
			return err
		}
		s.log.Info("report target already gone, cleaning up report",
			zap.String("report_id", report.ID),
			zap.String("target_kind", string(report.TargetKind)),
			zap.String("target_id", report.TargetID))
	}

	if err := s.reports.Delete(ctx, report.ID); err != nil {
		return fmt.Errorf("forum: failed deleting report %s: %w", report.ID, err)
	}
	return nil
}

// UpdateReportStatus marks a report reviewed or resolved without removing
// the reported content. Staff only.
func (s *Service) UpdateReportStatus(ctx context.Context, actor models.Actor, id string, status models.ReportStatus) (*models.Report, error) {
	if !actor.IsStaff() {
		return nil, fmt.Errorf("only staff may update reports: %w", ErrForbidden)
	}
	if status != models.ReportReviewed && status != models.ReportResolved {
		return nil, fmt.Errorf("status must be reviewed or resolved: %w", ErrValidation)
	}
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.reports.SetStatus(ctx, report.ID, status); err != nil {
		return nil, fmt.Errorf("forum: failed updating report status: %w", err)
	}
	report.Status = status
	return report, nil
}

// targetExists resolves an entity by kind purely for existence, so a
// report against a vanished target fails with NotFound.
func (s *Service) targetExists(ctx context.Context, kind models.TargetKind, targetID string) error {
	var err error
	switch kind {
	case models.TargetPost:
		_, err = s.posts.GetByID(ctx, targetID)
	case models.TargetComment:
		_, err = s.comments.GetByID(ctx, targetID)
	case models.TargetReply:
		_, err = s.replies.GetByID(ctx, targetID)
	}
	return err
}
