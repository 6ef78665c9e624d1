package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateFormatISO is the canonical date format used across the service.
const DateFormatISO = "2006-01-02"

var isoDateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// relativeWords maps Korean and English relative-day phrases to day offsets.
var relativeWords = []struct {
	word   string
	offset int
}{
	{"그저께", -2},
	{"그제", -2},
	{"어제", -1},
	{"오늘", 0},
	{"내일", 1},
	{"모레", 2},
	{"yesterday", -1},
	{"today", 0},
	{"tomorrow", 1},
}

// Resolver converts relative date phrases to absolute dates against a base date.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone, e.g. "Asia/Seoul".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// ParseBase parses a caller-supplied current date ("2006-01-02" or RFC3339).
// Returns false when the value is empty or unparseable.
func (r *Resolver) ParseBase(currentDate string) (time.Time, bool) {
	currentDate = strings.TrimSpace(currentDate)
	if currentDate == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(DateFormatISO, currentDate, r.location); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, currentDate); err == nil {
		return t.In(r.location), true
	}
	return time.Time{}, false
}

// Now returns the current time in the resolver's location.
func (r *Resolver) Now() time.Time {
	return time.Now().In(r.location)
}

// DatesInText resolves every relative-day phrase and explicit ISO date found
// in text into absolute ISO dates, deduplicated in order of appearance.
func (r *Resolver) DatesInText(text string, base time.Time) []string {
	var dates []string
	seen := make(map[string]bool)

	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}

	for _, m := range isoDateRe.FindAllString(text, -1) {
		if _, err := time.Parse(DateFormatISO, m); err == nil {
			add(m)
		}
	}

	lower := strings.ToLower(text)
	for _, rw := range relativeWords {
		if strings.Contains(lower, rw.word) {
			add(r.startOfDay(base.AddDate(0, 0, rw.offset)).Format(DateFormatISO))
		}
	}

	return dates
}

// Context builds a Korean temporal context block for LLM prompts, anchoring
// relative phrases in the question to absolute dates.
func (r *Resolver) Context(base time.Time) string {
	weekday := int(base.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := base.AddDate(0, 0, -(weekday - 1)) // Monday
	weekEnd := weekStart.AddDate(0, 0, 6)           // Sunday

	return fmt.Sprintf(ContextTemplate,
		base.Format(DateFormatISO),
		base.Weekday().String(),
		base.AddDate(0, 0, -1).Format(DateFormatISO),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
	)
}

// ContextTemplate is the temporal context block injected into search prompts.
const ContextTemplate = `[현재 날짜 정보]
- 오늘: %s (%s)
- 어제: %s
- 이번 주: %s ~ %s
상대적인 날짜 표현("오늘", "어제", "이번 주")은 위 정보를 기준으로 해석하세요.
날짜 형식은 항상 YYYY-MM-DD 입니다.`

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
