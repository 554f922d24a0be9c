package timesheet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsResponseWireKeys(t *testing.T) {
	raw, err := json.Marshal(StatsResponse{
		TotalEntries:  20,
		TotalHours:    168.5,
		OvertimeHours: 8.5,
		AverageHours:  8.43,
		PresentDays:   17,
		AbsentDays:    1,
		LateDays:      2,
		LeaveDays:     1,
	})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))

	for _, key := range []string{
		"total_entries",
		"total_work_hours",
		"total_overtime_hours",
		"avg_daily_hours",
		"present_days",
		"absent_days",
		"late_days",
		"leave_days",
	} {
		require.Contains(t, payload, key)
	}
	require.Equal(t, 168.5, payload["total_work_hours"])
	require.Equal(t, 8.5, payload["total_overtime_hours"])
	require.Equal(t, 8.43, payload["avg_daily_hours"])
}
