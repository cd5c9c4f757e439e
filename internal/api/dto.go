package api

import "encoding/json"

// PeriodDTO selects the tax period of a run.
type PeriodDTO struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ReconcileRequest carries both already-fetched source payloads and the run
// parameters. The authority and ledger fields hold the raw upstream JSON
// unchanged; this layer never persists them.
type ReconcileRequest struct {
	Period    PeriodDTO       `json:"period"`
	Tolerance *string         `json:"tolerance,omitempty"` // decimal string, default "2.00"
	Families  []string        `json:"families,omitempty"`  // "b2b", "cdn"; empty means both
	Authority json.RawMessage `json:"authority"`
	Ledger    json.RawMessage `json:"ledger"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
