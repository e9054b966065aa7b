package game

import (
	"encoding/json"
	"sort"
)

// DayKey identifies one calendar day in the answer history.
type DayKey struct {
	Year  int
	Month int
	Day   int
}

// History is the long-term record of each completed day's answers. It is
// kept internally as a flat map keyed by (year, month, day); the nested
// year→month→day shape exists only in the serialized form.
type History struct {
	entries map[DayKey][]bool
}

// Get returns the recorded answers for a day.
func (h History) Get(key DayKey) ([]bool, bool) {
	answers, ok := h.entries[key]
	return answers, ok
}

// Len returns the number of recorded days.
func (h History) Len() int {
	return len(h.entries)
}

// Days returns every recorded day in chronological order.
func (h History) Days() []DayKey {
	days := make([]DayKey, 0, len(h.entries))
	for key := range h.entries {
		days = append(days, key)
	}
	sort.Slice(days, func(i, j int) bool {
		a, b := days[i], days[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return days
}

// WithDay returns a new history with the day's answers set, overwriting any
// previous entry for that exact day. The receiver is left untouched and the
// answers slice is copied.
func (h History) WithDay(key DayKey, answers []bool) History {
	entries := make(map[DayKey][]bool, len(h.entries)+1)
	for k, v := range h.entries {
		entries[k] = v
	}
	recorded := make([]bool, len(answers))
	copy(recorded, answers)
	entries[key] = recorded
	return History{entries: entries}
}

// MarshalJSON renders the history in its nested year→month→day form.
func (h History) MarshalJSON() ([]byte, error) {
	nested := make(map[int]map[int]map[int][]bool, len(h.entries))
	for key, answers := range h.entries {
		months, ok := nested[key.Year]
		if !ok {
			months = make(map[int]map[int][]bool)
			nested[key.Year] = months
		}
		days, ok := months[key.Month]
		if !ok {
			days = make(map[int][]bool)
			months[key.Month] = days
		}
		days[key.Day] = answers
	}
	return json.Marshal(nested)
}

// UnmarshalJSON flattens the nested serialized form back into day keys.
func (h *History) UnmarshalJSON(data []byte) error {
	var nested map[int]map[int]map[int][]bool
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}

	h.entries = nil
	if len(nested) == 0 {
		return nil
	}

	h.entries = make(map[DayKey][]bool)
	for year, months := range nested {
		for month, days := range months {
			for day, answers := range days {
				h.entries[DayKey{Year: year, Month: month, Day: day}] = answers
			}
		}
	}
	return nil
}
