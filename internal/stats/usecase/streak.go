package usecase

import "studypal/internal/stats"

// computeStreak derives streak figures from ordered buckets (oldest first).
// Longest considers every run in the window; current is only the unbroken run
// ending at the newest bucket.
func computeStreak(buckets []stats.DayBucket) stats.StreakState {
	var st stats.StreakState

	running := 0
	for i := range buckets {
		if buckets[i].Completed == 0 {
			missed := buckets[i].Date
			st.LastMissedDay = &missed
			st.Longest = max(st.Longest, running)
			running = 0
			continue
		}
		running++
	}
	st.Longest = max(st.Longest, running)

	for i := len(buckets) - 1; i >= 0 && buckets[i].Completed > 0; i-- {
		st.Current++
	}

	return st
}
