package widget

// Storage keys shared by every backend. They match the keys the host app has
// always written into the platform preferences.
const (
	KeyHasWrittenToday  = "hasWrittenToday"
	KeyCurrentStreak    = "currentStreak"
	KeyLastEntryContent = "lastEntryContent"
)

// State is the snapshot the host app shares with its widgets.
type State struct {
	HasWrittenToday  bool
	CurrentStreak    int
	LastEntryContent *string
}

// DefaultState is what a widget sees before the host app ever wrote anything.
func DefaultState() State {
	return State{}
}

// Normalized clamps a negative streak to zero and turns empty content into
// absent content.
func (s State) Normalized() State {
	if s.CurrentStreak < 0 {
		s.CurrentStreak = 0
	}
	if s.LastEntryContent != nil && *s.LastEntryContent == "" {
		s.LastEntryContent = nil
	}
	return s
}

// Content returns today's entry preview. Content left over from a previous day
// is never returned once HasWrittenToday is false.
func (s State) Content() (string, bool) {
	if !s.HasWrittenToday || s.LastEntryContent == nil {
		return "", false
	}
	return *s.LastEntryContent, true
}

// Equal compares two snapshots by value.
func (s State) Equal(o State) bool {
	if s.HasWrittenToday != o.HasWrittenToday || s.CurrentStreak != o.CurrentStreak {
		return false
	}
	if (s.LastEntryContent == nil) != (o.LastEntryContent == nil) {
		return false
	}
	return s.LastEntryContent == nil || *s.LastEntryContent == *o.LastEntryContent
}

// StringPtr is a small helper for optional content.
func StringPtr(v string) *string { return &v }
