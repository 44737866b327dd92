package services

import (
	"sort"
	"time"
)

type Phase string

const (
	PhaseNoData     Phase = "no_data"
	PhaseFutureOnly Phase = "future_only"
	PhasePeriod     Phase = "period"
	PhaseLate       Phase = "late"
	PhaseFertile    Phase = "fertile"
	PhaseSafe       Phase = "safe"
)

// CycleStatus is derived state, recomputed from the log on every change and
// never patched incrementally.
type CycleStatus struct {
	Phase    Phase  `json:"phase"`
	DayCount int    `json:"day_count"`
	Label    string `json:"label"`
}

// Adjacent logged dates more than this many days apart belong to different
// bleeding blocks.
const blockGapDays = 2

const ovulationWindowDays = 2

// InferCycleStatus classifies today against the logged period days. It is a
// total, deterministic function: no side effects, no storage access, exactly
// one phase out for any input.
//
// sortedLogs must be ascending YYYY-MM-DD keys, the invariant the store
// maintains. cycleLength and periodLength are the user's configured values.
func InferCycleStatus(today time.Time, sortedLogs []string, cycleLength int, periodLength int) CycleStatus {
	if len(sortedLogs) == 0 {
		return CycleStatus{Phase: PhaseNoData, DayCount: 0, Label: "Log your period"}
	}

	todayKey := DateKey(today)
	pastLogs := logsOnOrBefore(sortedLogs, todayKey)
	if len(pastLogs) == 0 {
		return CycleStatus{Phase: PhaseFutureOnly, DayCount: 0, Label: "Wait for it"}
	}

	blockStart := latestBlockStart(pastLogs)
	startDay, err := ParseDateKey(blockStart)
	if err != nil {
		// Keys come from the store's canonical format; an unparseable one
		// means the snapshot was tampered with. Treat it as no data.
		return CycleStatus{Phase: PhaseNoData, DayCount: 0, Label: "Log your period"}
	}
	cycleDay := DaysBetween(startDay, today) + 1

	if containsKey(sortedLogs, todayKey) {
		return CycleStatus{Phase: PhasePeriod, DayCount: cycleDay, Label: "Heavy flow possible"}
	}
	if cycleDay > cycleLength {
		return CycleStatus{Phase: PhaseLate, DayCount: cycleDay - cycleLength, Label: "Days late"}
	}
	if cycleDay <= periodLength {
		return CycleStatus{Phase: PhasePeriod, DayCount: cycleDay, Label: "Spotting?"}
	}

	ovulationDay := cycleLength - 14
	if absInt(cycleDay-ovulationDay) <= ovulationWindowDays {
		return CycleStatus{Phase: PhaseFertile, DayCount: cycleDay, Label: "High chance of pregnancy"}
	}
	return CycleStatus{Phase: PhaseSafe, DayCount: cycleLength - cycleDay + 1, Label: "Period in..."}
}

// latestBlockStart finds the earliest date of the trailing contiguous run of
// past-or-present logs. Scanning backward, the first adjacent gap over
// blockGapDays marks the boundary; with no boundary the run reaches the
// oldest log. A single entry is its own block start.
func latestBlockStart(pastLogs []string) string {
	for index := len(pastLogs) - 1; index > 0; index-- {
		current, currentErr := ParseDateKey(pastLogs[index])
		previous, previousErr := ParseDateKey(pastLogs[index-1])
		if currentErr != nil || previousErr != nil {
			return pastLogs[index]
		}
		if DaysBetween(previous, current) > blockGapDays {
			return pastLogs[index]
		}
	}
	return pastLogs[0]
}

func logsOnOrBefore(sortedLogs []string, todayKey string) []string {
	boundary := sort.SearchStrings(sortedLogs, todayKey)
	if boundary < len(sortedLogs) && sortedLogs[boundary] == todayKey {
		boundary++
	}
	return sortedLogs[:boundary]
}

func containsKey(sortedLogs []string, key string) bool {
	position := sort.SearchStrings(sortedLogs, key)
	return position < len(sortedLogs) && sortedLogs[position] == key
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
