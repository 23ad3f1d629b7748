package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML shape of a roster.
//
//	participants:
//	  - name: karl
//	    column_id: "5301985"
//	    avoid: tuesday
type File struct {
	Participants []FileEntry `yaml:"participants"`
}

// FileEntry is one participant in a roster file.
type FileEntry struct {
	Name     string `yaml:"name"`
	ColumnID string `yaml:"column_id"`
	Avoid    string `yaml:"avoid,omitempty"`
}

// Load reads and validates a roster file.
//
// Returns an error if the file cannot be read or parsed, if an avoid value
// is not a weekday, or if the resulting roster fails [Roster.Validate].
func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("failed to read roster: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Roster{}, fmt.Errorf("failed to parse roster: %w", err)
	}

	return f.Roster()
}

// Roster converts the file entries into a validated [Roster].
func (f File) Roster() (Roster, error) {
	participants := make([]Participant, 0, len(f.Participants))
	for _, e := range f.Participants {
		forbidden, err := ParseWeekday(e.Avoid)
		if err != nil {
			return Roster{}, fmt.Errorf("participant %s: %w", e.Name, err)
		}
		participants = append(participants, Participant{
			Name:      e.Name,
			ColumnID:  e.ColumnID,
			Forbidden: forbidden,
		})
	}

	r := New(participants...)
	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}
