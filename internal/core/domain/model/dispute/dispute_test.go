package dispute_test

import (
	"testing"
	"time"

	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispute(t *testing.T) *dispute.Dispute {
	t.Helper()
	d, err := dispute.NewDispute(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"quality", "moisture content above agreed threshold",
		[]string{"lab-report.pdf"}, "partial refund",
		dispute.SeverityHigh, time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestNewDispute(t *testing.T) {
	t.Run("valid dispute opens", func(t *testing.T) {
		d := newTestDispute(t)
		assert.Equal(t, dispute.StatusOpen, d.Status())
		assert.Nil(t, d.Response())
		assert.Nil(t, d.Resolution())
		assert.Equal(t, int64(1), d.Version())
	})

	t.Run("missing description is rejected", func(t *testing.T) {
		_, err := dispute.NewDispute(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"quality", "", nil, "", dispute.SeverityLow, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown severity is rejected", func(t *testing.T) {
		_, err := dispute.NewDispute(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"quality", "desc", nil, "", dispute.Severity("extreme"), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDispute_Respond(t *testing.T) {
	t.Run("open moves to in_review", func(t *testing.T) {
		d := newTestDispute(t)
		responder := kernel.NewUUID()

		require.NoError(t, d.Respond(responder, "samples retested on our side", []string{"retest.pdf"}, time.Now()))

		assert.Equal(t, dispute.StatusInReview, d.Status())
		require.NotNil(t, d.Response())
		assert.True(t, d.Response().ResponderID.IsEqual(responder))
	})

	t.Run("second response is an invalid transition", func(t *testing.T) {
		d := newTestDispute(t)
		require.NoError(t, d.Respond(kernel.NewUUID(), "reply", nil, time.Now()))

		err := d.Respond(kernel.NewUUID(), "another reply", nil, time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		d := newTestDispute(t)
		require.ErrorIs(t, d.Respond(kernel.NewUUID(), "", nil, time.Now()), errs.ErrValueIsRequired)
	})
}

func TestDispute_Resolve(t *testing.T) {
	t.Run("resolves from in_review", func(t *testing.T) {
		d := newTestDispute(t)
		require.NoError(t, d.Respond(kernel.NewUUID(), "reply", nil, time.Now()))

		resolver := kernel.NewUUID()
		require.NoError(t, d.Resolve(resolver, "refund 10%", "credit note within 14 days", time.Now()))

		assert.Equal(t, dispute.StatusResolved, d.Status())
		require.NotNil(t, d.Resolution())
		assert.Equal(t, "refund 10%", d.Resolution().Outcome)
	})

	t.Run("resolves directly from open", func(t *testing.T) {
		d := newTestDispute(t)
		require.NoError(t, d.Resolve(kernel.NewUUID(), "withdrawn", "", time.Now()))
		assert.Equal(t, dispute.StatusResolved, d.Status())
	})

	t.Run("resolved is final", func(t *testing.T) {
		d := newTestDispute(t)
		require.NoError(t, d.Resolve(kernel.NewUUID(), "withdrawn", "", time.Now()))

		require.ErrorIs(t, d.Resolve(kernel.NewUUID(), "again", "", time.Now()), errs.ErrInvalidStatusTransition)
		require.ErrorIs(t, d.Respond(kernel.NewUUID(), "late", nil, time.Now()), errs.ErrInvalidStatusTransition)
	})
}

func TestRestoreDispute(t *testing.T) {
	t.Run("round trip with response", func(t *testing.T) {
		resp := &dispute.Response{ResponderID: kernel.NewUUID(), Message: "reply", At: time.Now()}
		d, err := dispute.RestoreDispute(dispute.RestoreDisputeParams{
			ID:          kernel.NewUUID(),
			OrderID:     kernel.NewUUID(),
			RaisedByID:  kernel.NewUUID(),
			Type:        "delivery",
			Description: "short delivery",
			Severity:    dispute.SeverityMedium,
			Status:      dispute.StatusInReview,
			RaisedAt:    time.Now(),
			Response:    resp,
			Version:     2,
		})
		require.NoError(t, err)
		assert.Equal(t, dispute.StatusInReview, d.Status())
		assert.Equal(t, int64(2), d.Version())
	})

	t.Run("invalid version is rejected", func(t *testing.T) {
		_, err := dispute.RestoreDispute(dispute.RestoreDisputeParams{
			ID:          kernel.NewUUID(),
			OrderID:     kernel.NewUUID(),
			RaisedByID:  kernel.NewUUID(),
			Type:        "delivery",
			Description: "short delivery",
			Severity:    dispute.SeverityMedium,
			Status:      dispute.StatusOpen,
			RaisedAt:    time.Now(),
			Version:     0,
		})
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}
