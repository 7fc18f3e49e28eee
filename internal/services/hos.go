package services

import (
	"math"

	"trip-planner-service/internal/domain"
)

// US federal Hours-of-Service limits for property-carrying drivers.
const (
	maxDailyDriving = 11.0
	maxShiftHours   = 14.0
	maxCycleHours   = 70.0
	prePostTrip     = 1.0

	// A 30-minute break is owed once a day's driving reaches 8 hours.
	breakAfterDriving = 8.0
	breakDuration     = 0.5

	// Safety bound against non-convergence; schedules never exceed it.
	maxScheduleDays = 30
)

// GenerateDailyLogs simulates a multi-day driving schedule for the
// given trip totals and the driver's already-used cycle hours.
//
// The loop is a greedy day-by-day state machine with no backtracking:
// once a day's entry is emitted it is never revised. When the
// remaining cycle budget drops below one hour a full rest day is
// emitted instead, modeling a mandatory 34-hour restart collapsed to
// one simulated day, and the budget resets to 70 hours.
//
// The function is pure: identical inputs produce identical schedules.
func GenerateDailyLogs(totalMiles, drivingHours, cycleUsedHours float64) []domain.DailyLogEntry {
	logs := []domain.DailyLogEntry{}

	remMiles := totalMiles
	remHours := drivingHours
	cycleRem := math.Max(0, maxCycleHours-cycleUsedHours)
	day := 1

	for (remMiles > 0 || remHours > 0) && day <= maxScheduleDays {
		if cycleRem < 1 {
			logs = append(logs, domain.DailyLogEntry{
				Day:          day,
				DriveHours:   0,
				OnDutyHours:  0,
				OffDutyHours: 24,
				Miles:        0,
				Notes:        []string{"34-hour restart"},
				IsRestDay:    true,
			})
			cycleRem = maxCycleHours
			day++
			continue
		}

		driveToday := math.Min(maxDailyDriving, remHours)
		breakTime := 0.0
		if driveToday >= breakAfterDriving {
			breakTime = breakDuration
		}

		// Binding constraint is whichever cap is smallest: shift
		// length, the computed workload, or the remaining cycle budget.
		onDuty := math.Min(maxShiftHours, math.Min(prePostTrip+driveToday+breakTime, cycleRem))
		// Recompute credited driving because onDuty may have been
		// clipped below the naive inspection+drive+break sum.
		finalDrive := math.Max(0, onDuty-prePostTrip-breakTime)

		// Apportion miles by the average speed implied by what remains,
		// clamping the divisor to avoid dividing by zero.
		dayMiles := math.Min(remMiles, remMiles/math.Max(remHours, 1)*finalDrive)

		notes := []string{}
		if breakTime > 0 {
			notes = append(notes, "30-min break")
		}

		logs = append(logs, domain.DailyLogEntry{
			Day:          day,
			DriveHours:   round1(finalDrive),
			OnDutyHours:  round1(onDuty),
			OffDutyHours: round1(math.Max(0, 24-onDuty)),
			Miles:        int(math.Round(dayMiles)),
			Notes:        notes,
			IsRestDay:    false,
		})

		// Internal accumulation stays unrounded to avoid compounding
		// rounding error across days.
		remMiles -= dayMiles
		remHours -= finalDrive
		cycleRem -= onDuty
		day++
	}

	return logs
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
