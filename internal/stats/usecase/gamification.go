package usecase

import (
	"fmt"
	"math"

	"studypal/internal/stats"
)

const placeholderAchievement = "Keep the momentum going!"

type achievementInput struct {
	completedTasks  int
	weeklyCompleted int
	streak          stats.StreakState
}

type achievementRule struct {
	applies func(in achievementInput) bool
	message func(in achievementInput) string
}

// achievementRules are evaluated in order; every rule that applies contributes.
var achievementRules = []achievementRule{
	{
		applies: func(in achievementInput) bool { return in.streak.Current >= 3 },
		message: func(in achievementInput) string { return fmt.Sprintf("🔥 %d-day streak", in.streak.Current) },
	},
	{
		applies: func(in achievementInput) bool { return in.weeklyCompleted >= 5 },
		message: func(achievementInput) string { return "✅ Closed 5+ tasks this week" },
	},
	{
		applies: func(in achievementInput) bool { return in.completedTasks >= 15 },
		message: func(achievementInput) string { return "🏅 Completed 15 tasks overall" },
	},
}

// computeGamification converts completions into XP, level and achievements.
func computeGamification(completedTasks, weeklyCompleted int, streak stats.StreakState) stats.GamificationState {
	xp := completedTasks * stats.XPPerCompletion
	into := xp % stats.XPPerLevel

	g := stats.GamificationState{
		XP:              xp,
		Level:           xp/stats.XPPerLevel + 1,
		XPPerCompletion: stats.XPPerCompletion,
		XPPerLevel:      stats.XPPerLevel,
		XPIntoLevel:     into,
		XPToNextLevel:   stats.XPPerLevel - into,
		ProgressPercent: int(math.Round(float64(into) / stats.XPPerLevel * 100)),
	}

	in := achievementInput{completedTasks: completedTasks, weeklyCompleted: weeklyCompleted, streak: streak}
	for _, rule := range achievementRules {
		if rule.applies(in) {
			g.Achievements = append(g.Achievements, rule.message(in))
		}
	}
	if len(g.Achievements) == 0 {
		g.Achievements = []string{placeholderAchievement}
	}

	return g
}
