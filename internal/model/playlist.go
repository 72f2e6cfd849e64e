package model

// PlaylistEntry is one item listed by a playlist preview
type PlaylistEntry struct {
	VideoID string
	Title   string
	URL     string
}

// PlaylistPreview is the list of items a playlist URL expands to
type PlaylistPreview struct {
	ID      string
	Title   string
	URL     string
	Entries []PlaylistEntry
}

// Len returns the number of entries
func (p *PlaylistPreview) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}
