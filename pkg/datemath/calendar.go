package datemath

import "time"

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// AddDays returns the start of the day n calendar days after t. DST-safe.
func (p *Parser) AddDays(t time.Time, n int) time.Time {
	start := p.StartOfDay(t)
	return time.Date(start.Year(), start.Month(), start.Day()+n, 0, 0, 0, 0, p.location)
}

// DayKey returns the YYYY-MM-DD key of t in the parser's timezone.
func (p *Parser) DayKey(t time.Time) string {
	return t.In(p.location).Format(layoutDate)
}

