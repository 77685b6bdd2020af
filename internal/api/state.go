package api

import (
	"bytes"
	"encoding/json"
)

// StateVersion is the envelope version this client understands. The backend
// does not stamp one yet; absent means version 1.
const StateVersion = 1

// State is the backend-owned promotion state carried round-trip with every
// chat exchange. The raw JSON is kept verbatim so unknown fields survive the
// trip untouched; the accessors decode only the handful of fields the client
// reacts to (status, title, embedded spreadsheet artifact).
type State struct {
	raw json.RawMessage
}

// Artifact is a spreadsheet the backend embedded in the state for download.
type Artifact struct {
	Base64   string
	Filename string
}

func (s State) Empty() bool {
	return len(s.raw) == 0 || bytes.Equal(s.raw, []byte("null"))
}

func (s *State) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		s.raw = nil
		return nil
	}
	s.raw = append(s.raw[:0], data...)
	return nil
}

func (s State) MarshalJSON() ([]byte, error) {
	if s.Empty() {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// statePeek is the decoded view of the fields the client cares about.
type statePeek struct {
	Version int    `json:"version"`
	Status  string `json:"status"`
	Data    struct {
		Titulo        string `json:"titulo"`
		ExcelBase64   string `json:"excel_base64"`
		ExcelFilename string `json:"excel_filename"`
	} `json:"data"`
}

// peek tolerates malformed state: every accessor reads zero values then.
func (s State) peek() statePeek {
	var p statePeek
	if s.Empty() {
		return p
	}
	_ = json.Unmarshal(s.raw, &p)
	return p
}

func (s State) Version() int {
	if v := s.peek().Version; v > 0 {
		return v
	}
	return StateVersion
}

// Status returns the backend's lifecycle status for the promotion being
// built: draft, gathering, needs_review, ready, saved, sent.
func (s State) Status() string {
	return s.peek().Status
}

// Title returns the promotion title once the backend has extracted one.
func (s State) Title() string {
	return s.peek().Data.Titulo
}

// Artifact reports the embedded spreadsheet, when both fields are present.
func (s State) Artifact() (Artifact, bool) {
	p := s.peek()
	if p.Data.ExcelBase64 == "" || p.Data.ExcelFilename == "" {
		return Artifact{}, false
	}
	return Artifact{Base64: p.Data.ExcelBase64, Filename: p.Data.ExcelFilename}, true
}

// WithoutArtifact returns a copy with the artifact fields removed so a later
// state echo cannot re-trigger the download. All other fields, known or not,
// are preserved. A state that cannot be decoded is returned unchanged.
func (s State) WithoutArtifact() State {
	if s.Empty() {
		return s
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(s.raw, &m); err != nil {
		return s
	}
	dataRaw, ok := m["data"]
	if !ok {
		return s
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(dataRaw, &data); err != nil {
		return s
	}
	delete(data, "excel_base64")
	delete(data, "excel_filename")
	newData, err := json.Marshal(data)
	if err != nil {
		return s
	}
	m["data"] = newData
	raw, err := json.Marshal(m)
	if err != nil {
		return s
	}
	return State{raw: raw}
}

// StateFromJSON builds a State from raw JSON, for tests and replay tooling.
func StateFromJSON(raw []byte) State {
	var s State
	_ = s.UnmarshalJSON(raw)
	return s
}
