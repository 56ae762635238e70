// Package history provides the character event history log: a growable,
// linearly searched record of notable events (birth, level gains, artifact
// finds, death) used for the character dump and for artifact bookkeeping.
package history

import (
	"fmt"

	"github.com/google/uuid"
)

// EventType is a bit-set of event categories attached to a history entry.
type EventType uint16

const (
	// PlayerBirth marks the character creation entry.
	PlayerBirth EventType = 1 << iota
	// ArtifactUnknown marks an artifact found but not yet identified.
	ArtifactUnknown
	// ArtifactKnown marks an identified artifact.
	ArtifactKnown
	// ArtifactLost marks an artifact lost forever.
	ArtifactLost
	// PlayerDeath marks the character death entry.
	PlayerDeath
	// SlayUnique marks the death of a unique monster.
	SlayUnique
	// GainLevel marks a character level gain.
	GainLevel
	// Generic marks entries with no special handling.
	Generic
)

// Has reports whether all bits of flag are set on t.
func (t EventType) Has(flag EventType) bool {
	return t&flag == flag
}

// Entry is one record in the history log.
type Entry struct {
	ID        uuid.UUID
	Type      EventType
	Artifact  int // artifact index, 0 for non-artifact entries
	Depth     int // dungeon depth where the event happened
	CharLevel int // character level at the time
	Turn      int64
	Text      string
}

// Number of entries available at birth, and the hard cap the log refuses
// to grow past.
const (
	birthSize  = 10
	maxEntries = 5000
)

// Log is the historical list for one character. Entries are append-only
// except for artifact flag rewrites; all searches are linear from the
// newest entry backwards.
//
// A Log is not safe for concurrent use.
type Log struct {
	entries []Entry
}

// New returns an empty history log with birth capacity preallocated.
func New() *Log {
	return &Log{entries: make([]Entry, 0, birthSize)}
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear discards all entries.
func (l *Log) Clear() {
	l.entries = nil
}

// Entries returns a copy of the log for UI use, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// AddFull appends an entry with every field supplied. Returns false when
// the log is at its hard cap.
func (l *Log) AddFull(t EventType, artifact, depth, charLevel int, turn int64, text string) bool {
	if len(l.entries) >= maxEntries {
		return false
	}
	l.entries = append(l.entries, Entry{
		ID:        uuid.New(),
		Type:      t,
		Artifact:  artifact,
		Depth:     depth,
		CharLevel: charLevel,
		Turn:      turn,
		Text:      text,
	})
	return true
}

// Add appends a non-artifact entry.
func (l *Log) Add(text string, t EventType, depth, charLevel int, turn int64) bool {
	return l.AddFull(t, 0, depth, charLevel, turn, text)
}

// KnowArtifact rewrites the most recent entry for the given artifact as
// known, discarding its previous flags. Returns false when the artifact
// has no entry.
func (l *Log) KnowArtifact(artifact int) bool {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Artifact == artifact && artifact != 0 {
			l.entries[i].Type = ArtifactKnown
			return true
		}
	}
	return false
}

// LoseArtifact marks the artifact's most recent entry as lost forever. If
// the artifact was never logged the loss itself is recorded as a missed
// artifact, and false is returned.
func (l *Log) LoseArtifact(artifact, depth, charLevel int, turn int64, name string) bool {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Artifact == artifact && artifact != 0 {
			l.entries[i].Type |= ArtifactLost
			return true
		}
	}

	// Lost an artifact that never had a history entry: we missed it.
	l.AddArtifact(artifact, depth, charLevel, turn, name, false, false)
	return false
}

// IsArtifactKnown reports whether the artifact has a known entry.
func (l *Log) IsArtifactKnown(artifact int) bool {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Type.Has(ArtifactKnown) && l.entries[i].Artifact == artifact {
			return true
		}
	}
	return false
}

// isArtifactLogged reports whether the artifact has an active entry. Lost
// entries do not count, so an artifact lost and later re-found in preserve
// mode is logged afresh.
func (l *Log) isArtifactLogged(artifact int) bool {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Type.Has(ArtifactLost) {
			continue
		}
		if l.entries[i].Artifact == artifact {
			return true
		}
	}
	return false
}

// AddArtifact records an artifact find, or reveals an existing entry,
// depending on whether the artifact is identified. found selects between
// "Found" and "Missed" wording. Returns false when the artifact was
// already logged and nothing changed.
func (l *Log) AddArtifact(artifact, depth, charLevel int, turn int64, name string, known, found bool) bool {
	verb := "Missed"
	if found {
		verb = "Found"
	}
	text := fmt.Sprintf("%s %s", verb, name)

	if known {
		if l.isArtifactLogged(artifact) {
			return l.KnowArtifact(artifact)
		}
		return l.AddFull(ArtifactKnown, artifact, depth, charLevel, turn, text)
	}

	if l.isArtifactLogged(artifact) {
		return false
	}
	t := ArtifactUnknown
	if !found {
		t |= ArtifactLost
	}
	return l.AddFull(t, artifact, depth, charLevel, turn, text)
}

// UnmaskUnknown converts all unknown-artifact entries to known. Use only
// after retirement or death for the final character dump.
func (l *Log) UnmaskUnknown() {
	for i := range l.entries {
		if l.entries[i].Type.Has(ArtifactUnknown) {
			l.entries[i].Type &^= ArtifactUnknown
			l.entries[i].Type |= ArtifactKnown
		}
	}
}
