package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func recordWithDays(n int) domain.TripRecord {
	logs := make([]domain.DailyLogEntry, 0, n)
	for i := 1; i <= n; i++ {
		logs = append(logs, domain.DailyLogEntry{
			Day: i, DriveHours: 11, OnDutyHours: 12.5, OffDutyHours: 11.5, Miles: 660,
		})
	}
	return domain.TripRecord{
		ID:             "8c1f6c1e-1111-2222-3333-444455556666",
		CurrentAddress: "Phoenix, AZ",
		PickupAddress:  "Tucson, AZ",
		DropoffAddress: "El Paso, TX",
		Plan:           domain.TripPlan{DailyLogs: logs},
	}
}

func TestLogSheetProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LogSheet(&buf, recordWithDays(4)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestLogSheetHandlesManyDays(t *testing.T) {
	// More entries than the render cap; must still produce a valid
	// document without error.
	var buf bytes.Buffer
	require.NoError(t, LogSheet(&buf, recordWithDays(60)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestLogSheetEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LogSheet(&buf, recordWithDays(0)))
	assert.NotZero(t, buf.Len())
}
