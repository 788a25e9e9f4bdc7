package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"studypal/internal/stats"
)

const barWidth = 20

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).MarginTop(1)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(18)
	valStyle     = lipgloss.NewStyle().Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
)

// renderOverview lays out an overview as a terminal report.
func renderOverview(userID string, asOf time.Time, o stats.Overview) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("StudyPal overview for %s", userID)))
	b.WriteString(subtleStyle.Render(" as of " + asOf.Format("Mon 2006-01-02")))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Totals") + "\n")
	b.WriteString(row("Tasks", fmt.Sprintf("%d (%d done, %d pending)", o.Totals.TotalTasks, o.Totals.CompletedTasks, o.Totals.PendingTasks)))
	overdue := fmt.Sprintf("%d", o.Totals.OverdueTasks)
	if o.Totals.OverdueTasks > 0 {
		overdue = badStyle.Render(overdue)
	}
	b.WriteString(row("Overdue", overdue))
	b.WriteString(row("Focus hours", fmt.Sprintf("%.1f", o.Totals.FocusHours)))
	b.WriteString(row("Completion", fmt.Sprintf("%.1f%%", o.CompletionRate)))

	b.WriteString(sectionStyle.Render("Last 7 days") + "\n")
	b.WriteString(renderWeek(o.WeeklyProgress))
	b.WriteString(row("Weekly rate", fmt.Sprintf("%.1f%%", o.WeeklyCompletionRate)))
	b.WriteString(row("Weekly focus", fmt.Sprintf("%d min", o.WeeklyFocusMinutes)))
	b.WriteString(row("Streak", fmt.Sprintf("%d day(s), longest %d", o.Streak.Current, o.Streak.Longest)))

	b.WriteString(sectionStyle.Render("Upcoming") + "\n")
	b.WriteString(renderUpcoming(o.UpcomingTasks))

	b.WriteString(sectionStyle.Render("Progress") + "\n")
	b.WriteString(boxStyle.Render(renderGamification(o.Gamification)))
	b.WriteString("\n")

	return b.String()
}

func row(key, val string) string {
	return keyStyle.Render(key) + valStyle.Render(val) + "\n"
}

func renderWeek(buckets []stats.DayBucket) string {
	maxMinutes := 0
	for _, bk := range buckets {
		maxMinutes = max(maxMinutes, bk.StudyMinutes)
	}

	var b strings.Builder
	for _, bk := range buckets {
		filled := 0
		if maxMinutes > 0 {
			filled = bk.StudyMinutes * barWidth / maxMinutes
		}
		bar := goodStyle.Render(strings.Repeat("█", filled)) + subtleStyle.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%s %s %s %3d min  %d/%d\n",
			subtleStyle.Render(bk.Date.Format("01-02")), bk.Label, bar, bk.StudyMinutes, bk.Completed, bk.Planned)
	}
	return b.String()
}

func renderUpcoming(tasks []stats.UpcomingTask) string {
	if len(tasks) == 0 {
		return subtleStyle.Render("nothing due") + "\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		due := "no deadline"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		if t.Overdue {
			due = badStyle.Render(due + " overdue")
		}
		course := ""
		if t.Course != "" {
			course = subtleStyle.Render(" [" + t.Course + "]")
		}
		fmt.Fprintf(&b, "• %s%s  %s  %s\n", t.Title, course, due, subtleStyle.Render(string(t.Priority)))
	}
	return b.String()
}

func renderGamification(g stats.GamificationState) string {
	filled := g.ProgressPercent * barWidth / 100
	bar := goodStyle.Render(strings.Repeat("█", filled)) + subtleStyle.Render(strings.Repeat("░", barWidth-filled))

	lines := []string{
		fmt.Sprintf("Level %d  %d XP  %s %d%%", g.Level, g.XP, bar, g.ProgressPercent),
		subtleStyle.Render(fmt.Sprintf("%d XP to next level", g.XPToNextLevel)),
	}
	for _, a := range g.Achievements {
		lines = append(lines, "★ "+a)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
