package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/item"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestValidateWindow(t *testing.T) {
	start := testNow.Add(time.Hour)
	end := testNow.Add(2 * time.Hour)

	t.Run("valid window passes", func(t *testing.T) {
		require.NoError(t, ValidateWindow(start, end, testNow))
	})

	t.Run("missing start", func(t *testing.T) {
		assert.ErrorIs(t, ValidateWindow(time.Time{}, end, testNow), ErrInvalidRange)
	})

	t.Run("missing end", func(t *testing.T) {
		assert.ErrorIs(t, ValidateWindow(start, time.Time{}, testNow), ErrInvalidRange)
	})

	t.Run("start equals end", func(t *testing.T) {
		assert.ErrorIs(t, ValidateWindow(start, start, testNow), ErrInvalidRange)
	})

	t.Run("start after end", func(t *testing.T) {
		assert.ErrorIs(t, ValidateWindow(end, start, testNow), ErrInvalidRange)
	})

	t.Run("start not in the future", func(t *testing.T) {
		assert.ErrorIs(t, ValidateWindow(testNow, end, testNow), ErrInvalidRange)
		assert.ErrorIs(t, ValidateWindow(testNow.Add(-time.Hour), end, testNow), ErrInvalidRange)
	})

	t.Run("end not in the future", func(t *testing.T) {
		assert.ErrorIs(t, ValidateWindow(testNow.Add(-2*time.Hour), testNow.Add(-time.Hour), testNow), ErrInvalidRange)
	})
}

func TestValidateCreation(t *testing.T) {
	start := testNow.Add(time.Hour)
	end := testNow.Add(2 * time.Hour)

	available := &item.Item{ID: 1, Name: "drill", Available: true, OwnerID: 10}

	t.Run("valid creation passes", func(t *testing.T) {
		require.NoError(t, ValidateCreation(available, 20, start, end, testNow))
	})

	t.Run("unavailable item", func(t *testing.T) {
		unavailable := &item.Item{ID: 2, Available: false, OwnerID: 10}
		assert.ErrorIs(t, ValidateCreation(unavailable, 20, start, end, testNow), ErrItemUnavailable)
	})

	t.Run("self booking masked as not found", func(t *testing.T) {
		err := ValidateCreation(available, 10, start, end, testNow)
		assert.ErrorIs(t, err, item.ErrNotFound)
	})
}

func TestValidateOwner(t *testing.T) {
	b := &Booking{ID: 1, ItemOwnerID: 10, BookerID: 20}

	require.NoError(t, ValidateOwner(10, b))

	t.Run("non-owner masked as not found", func(t *testing.T) {
		assert.ErrorIs(t, ValidateOwner(20, b), ErrNotFound)
		assert.ErrorIs(t, ValidateOwner(99, b), ErrNotFound)
	})
}

func TestDecisionTarget(t *testing.T) {
	target, err := DecisionTarget("true")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, target)

	target, err = DecisionTarget("false")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, target)

	t.Run("anything else is a protocol fault", func(t *testing.T) {
		for _, token := range []string{"", "yes", "TRUE", "1", "approved"} {
			_, err := DecisionTarget(token)
			assert.ErrorIs(t, err, ErrBadDecision, "token %q", token)
		}
	})
}

func TestValidateTransition(t *testing.T) {
	t.Run("waiting can go both ways", func(t *testing.T) {
		require.NoError(t, ValidateTransition(StatusWaiting, StatusApproved))
		require.NoError(t, ValidateTransition(StatusWaiting, StatusRejected))
	})

	t.Run("re-issuing the same decision is refused", func(t *testing.T) {
		assert.ErrorIs(t, ValidateTransition(StatusApproved, StatusApproved), ErrAlreadyDecided)
		assert.ErrorIs(t, ValidateTransition(StatusRejected, StatusRejected), ErrAlreadyDecided)
	})

	t.Run("an earlier decision can be overturned", func(t *testing.T) {
		require.NoError(t, ValidateTransition(StatusApproved, StatusRejected))
		require.NoError(t, ValidateTransition(StatusRejected, StatusApproved))
	})

	t.Run("states outside the table go nowhere", func(t *testing.T) {
		assert.ErrorIs(t, ValidateTransition(StatusCanceled, StatusApproved), ErrBadTransition)
	})
}

func TestParseState(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		for _, token := range []string{"ALL", "all", "Current", "pAsT", "future", "waiting", "REJECTED"} {
			_, err := ParseState(token)
			require.NoError(t, err, "token %q", token)
		}
	})

	t.Run("unknown token named verbatim", func(t *testing.T) {
		_, err := ParseState("BOGUS")
		require.Error(t, err)
		assert.Equal(t, "Unknown state: BOGUS", err.Error())
	})
}
