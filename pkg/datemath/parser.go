package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoRe        = regexp.MustCompile(`^(\d+) (day|days|week|weeks) ago$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves day expressions and calendar days in a single timezone.
type Parser struct {
	location *time.Location
}

// UTC is a Parser whose calendar days are UTC days.
var UTC = &Parser{location: time.UTC}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "UTC", "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a day expression to the start of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today", "now":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.AddDays(baseTime, 1), nil
	case "yesterday":
		return p.AddDays(baseTime, -1), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, baseTime)
	}
	if strings.HasSuffix(expr, " ago") {
		return p.parseAgo(expr, baseTime)
	}
	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, baseTime)
	}

	if t, err := time.ParseInLocation(layoutDate, expr, p.location); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, strings.ToUpper(expr)); err == nil {
		return p.StartOfDay(t), nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid duration %q", ErrUnknownExpression, expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.AddDays(baseTime, amount), nil
	case strings.HasPrefix(unit, "week"):
		return p.AddDays(baseTime, amount*7), nil
	default:
		start := p.StartOfDay(baseTime)
		return time.Date(start.Year(), start.Month()+time.Month(amount), start.Day(), 0, 0, 0, 0, p.location), nil
	}
}

// parseAgo handles patterns like "3 days ago", "1 week ago".
func (p *Parser) parseAgo(expr string, baseTime time.Time) (time.Time, error) {
	matches := agoRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: invalid offset %q", ErrUnknownExpression, expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	if strings.HasPrefix(matches[2], "week") {
		amount *= 7
	}
	return p.AddDays(baseTime, -amount), nil
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(expr string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(expr, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("%w: unknown weekday %q", ErrUnknownExpression, dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.AddDays(baseTime, daysUntil), nil
}
