package publish

import (
	"encoding/json"
	"time"
)

// ReportMessage is the envelope published for one report run. Report is the
// already-serialized report JSON, carried verbatim.
type ReportMessage struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Report      json.RawMessage `json:"report"`
}

func NewReportMessage(runID string, report []byte) *ReportMessage {
	return &ReportMessage{
		RunID:       runID,
		GeneratedAt: time.Now(),
		Report:      report,
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportMessageFromJSON creates a message from JSON bytes.
func ReportMessageFromJSON(data []byte) (*ReportMessage, error) {
	var msg ReportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
