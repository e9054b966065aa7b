// Package prefs persists the game's durable markers: the serialized game
// state blob, the last-visit date, the availability window, and the
// questions-per-day quota.
//
// Persistence goes through a small key-value Store interface with two
// backends: a sqlite database and a file-per-key directory. The file backend
// replaces values atomically (write to a temp file, then rename) so a crash
// mid-write can never truncate a previously valid value.
package prefs
