package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language due-date expressions found inside a
// sentence to absolute calendar dates. The reference time is injected on
// every call, so the parser itself holds no clock.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Date-expression rules, evaluated in order. The first rule that matches
// the sentence wins; later expressions in the same sentence are ignored.
var (
	todayRE    = regexp.MustCompile(`\b(?:today|tonight|this evening)\b`)
	tomorrowRE = regexp.MustCompile(`\b(?:tomorrow|next day)\b`)
	thisWeekRE = regexp.MustCompile(`\b(?:this week|by friday|end of (?:the )?week)\b`)
	nextWeekRE = regexp.MustCompile(`\b(?:next|following) week\b`)
	weekdayRE  = regexp.MustCompile(`\b(?:(next|this)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	monthDayRE = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	slashRE    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	isoRE      = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	inOffsetRE = regexp.MustCompile(`\bin (\d+) (hour|day|week)s?\b`)
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

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseDue scans a sentence for a due-date expression and resolves it
// against the injected reference time. It returns the date as YYYY-MM-DD
// and true, or "" and false when no expression matches. Time-of-day in
// the matched phrase ("tonight", "in 5 hours") is discarded; only the
// resulting calendar date is kept.
//
// ParseDue never fails: malformed numeric dates such as "13/45" resolve
// to absent rather than an error.
func (p *Parser) ParseDue(sentence string, base time.Time) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(sentence))
	if s == "" {
		return "", false
	}
	base = base.In(p.location)

	if todayRE.MatchString(s) {
		return p.formatDate(base), true
	}

	if tomorrowRE.MatchString(s) {
		return p.formatDate(base.AddDate(0, 0, 1)), true
	}

	if thisWeekRE.MatchString(s) {
		// Next Friday at or after the reference date. On a Friday this
		// resolves to that same day.
		offset := (int(time.Friday) - int(base.Weekday()) + 7) % 7
		return p.formatDate(base.AddDate(0, 0, offset)), true
	}

	if nextWeekRE.MatchString(s) {
		return p.formatDate(base.AddDate(0, 0, 7)), true
	}

	if m := weekdayRE.FindStringSubmatch(s); m != nil {
		qualifier := m[1]
		target := weekdays[m[2]]
		offset := (int(target) - int(base.Weekday()) + 7) % 7
		if qualifier == "next" {
			offset += 7
		} else if offset == 0 && qualifier != "this" {
			// Bare weekday name on that same weekday means the upcoming one.
			offset = 7
		}
		return p.formatDate(base.AddDate(0, 0, offset)), true
	}

	if m := monthDayRE.FindStringSubmatch(s); m != nil {
		month := months[m[1]]
		day, _ := strconv.Atoi(m[2])
		d := time.Date(base.Year(), month, day, 0, 0, 0, 0, p.location)
		if d.Month() != month || d.Day() != day {
			// time.Date normalizes overflow (e.g. "february 30"); treat as absent.
			return "", false
		}
		if d.Before(p.startOfDay(base)) {
			d = d.AddDate(1, 0, 0)
		}
		return p.formatDate(d), true
	}

	if m := slashRE.FindStringSubmatch(s); m != nil {
		return p.resolveSlashDate(m, base)
	}

	if m := isoRE.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return p.resolveNumericDate(year, month, day)
	}

	if m := inOffsetRE.FindStringSubmatch(s); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "hour":
			return p.formatDate(base.Add(time.Duration(amount) * time.Hour)), true
		case "day":
			return p.formatDate(base.AddDate(0, 0, amount)), true
		case "week":
			return p.formatDate(base.AddDate(0, 0, amount*7)), true
		}
	}

	return "", false
}

// resolveSlashDate handles US month-first MM/DD[/YY[YY]] expressions.
// Two-digit years are interpreted as 20YY; a missing year means the
// reference year.
func (p *Parser) resolveSlashDate(m []string, base time.Time) (string, bool) {
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year := base.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	return p.resolveNumericDate(year, month, day)
}

func (p *Parser) resolveNumericDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if int(d.Month()) != month || d.Day() != day {
		return "", false
	}
	return p.formatDate(d), true
}

func (p *Parser) formatDate(t time.Time) string {
	return t.In(p.location).Format(DateFormatISO)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
