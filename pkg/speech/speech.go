// Package speech defines the verbal output boundary. The navigation core
// prepares message keys and directions; an external screen-reader or TTS
// integration does the actual speaking. Localized string tables live on
// the game side — the built-in lookup is for demos and tests.
package speech

// Announcer accepts prepared messages for verbal output.
type Announcer interface {
	// Say queues a message behind whatever is already speaking.
	Say(msg string)

	// Interrupt discards pending messages and speaks immediately. Used
	// for time-critical cues like attack telegraphs.
	Interrupt(msg string)
}

// Lookup resolves a message key (plus an optional direction suffix like
// "left" or "ahead") into display text. The core only ever supplies keys
// and parameters.
type Lookup interface {
	Message(key, direction string) string
}

// MapLookup is a trivial in-memory Lookup over a key table.
type MapLookup map[string]string

// Message returns the text for key, appending the direction when present.
// Unknown keys fall back to the key itself so a missing table entry is
// audible rather than silent.
func (m MapLookup) Message(key, direction string) string {
	text, ok := m[key]
	if !ok {
		text = key
	}
	if direction == "" {
		return text
	}
	if suffix, ok := m["dir."+direction]; ok {
		return text + " " + suffix
	}
	return text + " " + direction
}
