package domain

// ChangeSet is a batch of asset changes reported by the host
type ChangeSet struct {
	Added     []string
	Deleted   []string
	Moved     []string
	MovedFrom []string
	Imported  []string
}

// IsEmpty reports whether the batch carries no paths at all
func (c ChangeSet) IsEmpty() bool {
	return len(c.Added) == 0 && len(c.Deleted) == 0 && len(c.Moved) == 0 &&
		len(c.MovedFrom) == 0 && len(c.Imported) == 0
}

// Touches reports whether an added, deleted or moved path matches one of the
// configured extensions. Unlike Accepts, an empty list never matches.
func (c ChangeSet) Touches(cfg EditorConfig) bool {
	if len(cfg.AllowedExtensions) == 0 {
		return false
	}
	for _, group := range [][]string{c.Added, c.Deleted, c.Moved} {
		for _, path := range group {
			if matchesAny(path, cfg.AllowedExtensions) {
				return true
			}
		}
	}
	return false
}
