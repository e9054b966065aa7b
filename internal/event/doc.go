// Package event provides types and functions for historical "on this day" events.
//
// An event is a single historical occurrence tied to a month/day of the
// calendar: the year it happened, its descriptive text, and the reference
// pages it mentions. The package also decides which events are usable as quiz
// questions: the year must fall in [1, current year], and the text must not
// contain a bare 1-4 digit number that would give the answer away.
package event
