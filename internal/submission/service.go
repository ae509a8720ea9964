package submission

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-fieldsales/internal/common"
	"github.com/noah-isme/backend-fieldsales/internal/obs"
	"github.com/noah-isme/backend-fieldsales/internal/order"
)

// Result summarises a completed submission.
type Result struct {
	Records     int       `json:"records"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Service builds a batch from the draft and hands it to the sink, one append
// per record in build order. Submission is a single blocking operation; no
// retry happens here — resubmitting regenerates fresh record IDs, so
// duplicates from a user retry are accepted behavior.
type Service struct {
	Builder *Builder
	Sink    Sink
	Log     zerolog.Logger
	Now     func() time.Time
}

// Submit validates the draft, builds the batch, and appends every record.
// A sink failure partway through is reported as an indeterminate outcome:
// some lines may have been recorded, and the caller must surface that rather
// than claim full success.
func (s *Service) Submit(ctx context.Context, d order.Draft, geo Geolocation) (Result, error) {
	if s.Builder == nil || s.Sink == nil {
		return Result{}, common.NewAppError("INTERNAL", "submission service not configured", http.StatusInternalServerError, nil)
	}
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}
	records, err := s.Builder.Build(d, geo, now)
	if err != nil {
		countSubmission("rejected")
		return Result{}, err
	}
	appended := 0
	for _, rec := range records {
		if err := s.Sink.Append(ctx, rec); err != nil {
			countSubmission("indeterminate")
			countAppendFailure()
			s.Log.Error().Err(err).
				Str("retailer", d.Retailer).
				Str("category", d.Category).
				Int("appended", appended).
				Int("total", len(records)).
				Msg("submission sink append failed")
			return Result{}, &common.AppError{
				Code:       "SINK_APPEND",
				Message:    "submission outcome indeterminate: some lines may have been recorded",
				HTTPStatus: http.StatusBadGateway,
				Err:        err,
				Details:    map[string]any{"appended": appended, "total": len(records)},
			}
		}
		appended++
		countRecord()
	}
	countSubmission("ok")
	s.Log.Info().
		Str("retailer", d.Retailer).
		Str("category", d.Category).
		Int("records", appended).
		Time("submitted_at", now).
		Msg("submission recorded")
	return Result{Records: appended, SubmittedAt: now}, nil
}

func countSubmission(result string) {
	if obs.SubmissionTotal != nil {
		obs.SubmissionTotal.WithLabelValues(result).Inc()
	}
}

func countRecord() {
	if obs.SubmissionRecordsTotal != nil {
		obs.SubmissionRecordsTotal.Inc()
	}
}

func countAppendFailure() {
	if obs.SinkAppendFailures != nil {
		obs.SinkAppendFailures.Inc()
	}
}
