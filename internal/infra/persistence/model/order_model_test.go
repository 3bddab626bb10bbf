package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLineList_ScanValueRoundTrip(t *testing.T) {
	lines := OrderLineList{
		{MealID: uuid.New(), Name: "Burger", Price: 9.5, Count: 2},
		{MealID: uuid.New(), Name: "Fries", Price: 3, Count: 1},
	}

	value, err := lines.Value()
	require.NoError(t, err)

	var scanned OrderLineList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, lines, scanned)
}

func TestTrackList_ScanStringSource(t *testing.T) {
	// lib/pq style drivers hand JSONB over as a string.
	raw := `[{"status":1,"time":"2025-01-02T15:04:05Z"}]`

	var track TrackList
	require.NoError(t, track.Scan(raw))
	require.Len(t, track, 1)
	assert.Equal(t, 1, track[0].Status)
	assert.Equal(t, time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC), track[0].Time.UTC())
}

func TestTrackList_ScanNil(t *testing.T) {
	var track TrackList
	require.NoError(t, track.Scan(nil))
	assert.Nil(t, track)
}

func TestTrackList_ScanUnsupportedType(t *testing.T) {
	var track TrackList
	assert.Error(t, track.Scan(42))
}
