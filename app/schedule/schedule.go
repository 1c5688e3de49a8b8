// Package schedule normalizes free-text day/hour input into the canonical
// "Dia HH:MM" slot keys used by the clases table and the students' schedule
// strings. It is the single implementation of that normalization: both the
// persistence layer and the API handlers go through it.
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Days is the fixed calendar order of class days. The canonical casing of a
// day name is the one listed here.
var Days = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// Hours are the ten bookable class times.
var Hours = []string{"08:00", "09:00", "10:00", "11:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00"}

// Slot is a (day, hour) coordinate. Dia and Hora are always in canonical
// form when a Slot came out of ParseSlot or ParseList.
type Slot struct {
	Dia  string `json:"dia"`
	Hora string `json:"hora"`
}

// Key returns the canonical "Dia HH:MM" representation.
func (s Slot) Key() string {
	return s.Dia + " " + s.Hora
}

var (
	hourSuffixRe = regexp.MustCompile(`\s*hs?$`)
	secondsRe    = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	hourRe       = regexp.MustCompile(`^(\d{1,2})(?::?(\d{2}))?$`)
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases, trims and removes diacritics so "SÁBADO " compares equal
// to "sabado".
func fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeDay matches a free-text day name against Days, ignoring case,
// accents and surrounding whitespace. It returns the canonical name.
func NormalizeDay(s string) (string, bool) {
	f := fold(s)
	if f == "" {
		return "", false
	}
	for _, d := range Days {
		if fold(d) == f {
			return d, true
		}
	}
	return "", false
}

// NormalizeHour shapes a free-text hour into "HH:MM". Accepted forms are
// "8", "8:00", "08.00", "08:00:00" and a trailing "h"/"hs" suffix. It does
// not check membership in Hours; callers that need a bookable hour use
// ParseSlot or check Hours themselves.
func NormalizeHour(s string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = hourSuffixRe.ReplaceAllString(t, "")
	t = strings.ReplaceAll(t, ".", ":")
	if secondsRe.MatchString(t) {
		t = t[:5]
	}
	m := hourRe.FindStringSubmatch(t)
	if m == nil {
		return "", false
	}
	hh := m[1]
	if len(hh) == 1 {
		hh = "0" + hh
	}
	mm := m[2]
	if mm == "" {
		mm = "00"
	}
	return hh + ":" + mm, true
}

// ParseSlot parses one "dia hora" token. Both halves are normalized and the
// result must be a bookable slot (day in Days, hour in Hours).
func ParseSlot(token string) (Slot, bool) {
	parts := strings.SplitN(strings.TrimSpace(token), " ", 2)
	if len(parts) != 2 {
		return Slot{}, false
	}
	dia, ok := NormalizeDay(parts[0])
	if !ok {
		return Slot{}, false
	}
	hora, ok := NormalizeHour(parts[1])
	if !ok || !ValidHour(hora) {
		return Slot{}, false
	}
	return Slot{Dia: dia, Hora: hora}, true
}

// ParseList parses a comma-separated schedule string. Invalid tokens are
// dropped, duplicates collapse to one slot.
func ParseList(s string) []Slot {
	var slots []Slot
	seen := map[string]bool{}
	for _, token := range strings.Split(s, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}
		slot, ok := ParseSlot(token)
		if !ok || seen[slot.Key()] {
			continue
		}
		seen[slot.Key()] = true
		slots = append(slots, slot)
	}
	return slots
}

// Sort orders slots by calendar day order, then by hour.
func Sort(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Dia != slots[j].Dia {
			return DayIndex(slots[i].Dia) < DayIndex(slots[j].Dia)
		}
		return slots[i].Hora < slots[j].Hora
	})
}

// FormatList serializes slots into the canonical comma-separated string,
// sorted day-then-hour. This is the only form ever sent to clients.
func FormatList(slots []Slot) string {
	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	Sort(sorted)
	keys := make([]string, len(sorted))
	for i, s := range sorted {
		keys[i] = s.Key()
	}
	return strings.Join(keys, ",")
}

// Canonicalize re-serializes a free-text schedule string. It is idempotent:
// Canonicalize(Canonicalize(s)) == Canonicalize(s).
func Canonicalize(s string) string {
	return FormatList(ParseList(s))
}

// DayIndex returns the position of a canonical day name in Days, or -1.
func DayIndex(dia string) int {
	for i, d := range Days {
		if d == dia {
			return i
		}
	}
	return -1
}

// ValidHour reports whether hora is one of the bookable Hours.
func ValidHour(hora string) bool {
	for _, h := range Hours {
		if h == hora {
			return true
		}
	}
	return false
}

// DayOrderSQL builds the ORDER BY CASE expression that sorts a dia column in
// calendar order. col must be a trusted column reference, never user input.
func DayOrderSQL(col string) string {
	var b strings.Builder
	b.WriteString("CASE " + col)
	for i, d := range Days {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", d, i)
	}
	b.WriteString(" ELSE 99 END")
	return b.String()
}
