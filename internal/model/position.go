package model

// Position is a job title candidates can be filed under. The whole set
// is always replaced at once, so ids are just the row's position in the
// submitted list.
type Position struct {
	ID   int    `gorm:"primarykey;autoIncrement:false" json:"id"`
	Name string `json:"name" gorm:"not null"`
}

// PositionNames flattens positions into their display names, in order.
func PositionNames(positions []Position) []string {
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		names = append(names, p.Name)
	}
	return names
}

// PositionsFromNames builds the stored rows for a replacement list,
// keeping only the first occurrence of each name and numbering ids from
// one in submission order.
func PositionsFromNames(names []string) []Position {
	seen := make(map[string]struct{}, len(names))
	out := make([]Position, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, Position{ID: len(out) + 1, Name: name})
	}
	return out
}
