package prefs

// Store is the key-value persistence interface backing the game's markers.
// Values are opaque text; Get reports absence separately from failure.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
