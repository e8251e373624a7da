package settlement

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/richxcame/motorent/internal/royalty"
	"github.com/richxcame/motorent/pkg/common"
	"github.com/richxcame/motorent/pkg/logger"
	"github.com/richxcame/motorent/pkg/money"
	"github.com/richxcame/motorent/pkg/validation"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service builds settlement reports
type Service struct {
	repo          RepositoryInterface
	settings      SettingsProvider
	maxReportDays int
}

// NewService creates a new settlement service
func NewService(repo RepositoryInterface, settings SettingsProvider, maxReportDays int) *Service {
	return &Service{
		repo:          repo,
		settings:      settings,
		maxReportDays: maxReportDays,
	}
}

// BuildReport settles every reservation starting in the query range.
// Settings and reservations load concurrently; the settings snapshot is
// then used for every reservation in the report.
func (s *Service) BuildReport(ctx context.Context, q ReportQuery) (*Report, error) {
	timer := prometheus.NewTimer(reportDuration)
	defer timer.ObserveDuration()

	if err := validation.ValidateDateRange(q.From, q.To, s.maxReportDays); err != nil {
		return nil, common.NewValidationError(err.Error())
	}

	var (
		snapshot royalty.Settings
		records  []royalty.ReservationRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		current, err := s.settings.Current(gctx)
		if err != nil {
			return err
		}
		snapshot = current
		return nil
	})
	g.Go(func() error {
		loaded, err := s.repo.ListReservations(gctx, q.From, q.To.AddDate(0, 0, 1), q.VendorID)
		if err != nil {
			return err
		}
		records = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, loadError(err)
	}

	items, skipped := s.settle(ctx, records, snapshot)
	summary := Summarize(items)

	report := &Report{
		From:      q.From.Format(common.DateLayout),
		To:        q.To.Format(common.DateLayout),
		VendorID:  q.VendorID,
		Settings:  snapshot,
		Vendors:   summary.Vendors,
		Totals:    summary.Totals,
		LineItems: items,
		Skipped:   skipped,
	}

	logger.WithContext(ctx).Named("settlement").Info("settlement report built",
		zap.String("from", report.From),
		zap.String("to", report.To),
		zap.Int("reservations", len(items)),
		zap.Int("skipped", len(skipped)),
		zap.Int("vendors", summary.Totals.VendorCount),
	)

	return report, nil
}

// VendorReport is BuildReport restricted to one vendor
func (s *Service) VendorReport(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*Report, error) {
	return s.BuildReport(ctx, ReportQuery{From: from, To: to, VendorID: &vendorID})
}

// Preview calculates one hypothetical reservation against the current settings
func (s *Service) Preview(ctx context.Context, req PreviewRequest) (*Preview, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, common.NewValidationError(err.Error())
	}

	snapshot, err := s.settings.Current(ctx)
	if err != nil {
		return nil, loadError(err)
	}

	in := royalty.Input{
		BikeSubtotal: money.Yen(req.BikeSubtotal),
		TotalAmount:  money.Yen(req.TotalAmount),
		PaymentType:  royalty.PaymentType(strings.ToLower(strings.TrimSpace(req.PaymentType))),
		Plan:         royalty.Plan(req.Plan),
		Refund:       royalty.RefundNone,
	}
	if req.Refund != "" {
		in.Refund = royalty.RefundType(strings.ToLower(strings.TrimSpace(req.Refund)))
	}

	return &Preview{
		Input:    in,
		Settings: snapshot,
		Result:   royalty.Calculate(in, snapshot),
	}, nil
}

func (s *Service) settle(ctx context.Context, records []royalty.ReservationRecord, snapshot royalty.Settings) ([]LineItem, []SkippedReservation) {
	items := make([]LineItem, 0, len(records))
	var skipped []SkippedReservation

	for _, rec := range records {
		in, err := rec.ToInput()
		if err != nil {
			reason := skipReasonInvalid
			if errors.Is(err, royalty.ErrIncompleteReservation) {
				reason = skipReasonIncomplete
			}
			skippedReservationsTotal.WithLabelValues(reason).Inc()
			logger.WarnContext(ctx, "reservation skipped from settlement",
				zap.String("reservation_id", rec.ID.String()),
				zap.String("vendor_id", rec.VendorID.String()),
				zap.String("reason", reason),
				zap.Error(err),
			)
			skipped = append(skipped, SkippedReservation{ReservationID: rec.ID, VendorID: rec.VendorID, Reason: err.Error()})
			continue
		}

		result := royalty.Calculate(in, snapshot)
		royaltyCalculationsTotal.WithLabelValues(string(in.PaymentType), string(in.Refund)).Inc()

		items = append(items, LineItem{
			ReservationID: rec.ID,
			VendorID:      rec.VendorID,
			VendorName:    rec.VendorName,
			StartAt:       rec.StartAt,
			Input:         in,
			Result:        result,
		})
	}

	return items, skipped
}

func loadError(err error) error {
	if appErr, ok := common.AsAppError(err); ok {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return common.NewAppError(http.StatusGatewayTimeout, "settlement report timed out", err)
	}
	return common.NewInternalError("failed to load settlement data", err)
}
