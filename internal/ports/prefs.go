package ports

// PreferenceStore persists string preferences across process restarts
type PreferenceStore interface {
	// Get returns the stored value for key, or def when nothing is stored
	Get(key, def string) (string, error)

	// Set stores value under key
	Set(key, value string) error

	Close() error
}
