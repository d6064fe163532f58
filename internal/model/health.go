package model

// RootResponse is the fixed liveness payload for GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// DiagnosticsResponse reports backend and database state for GET /test.
// The endpoint never fails; probe errors are reported inline in Database.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
