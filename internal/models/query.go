package models

// ExecuteRequest is sent to the query engine.
type ExecuteRequest struct {
	ConnectName     string `json:"connect_name"`
	Database        string `json:"database"`
	RetentionPolicy string `json:"retention_policy"`
	Measurement     string `json:"measurement"`
	Precision       string `json:"precision"`
	Command         string `json:"command"`
}

type ExecuteResponse struct {
	NoContent     bool     `json:"no_content"`
	Message       string   `json:"message"`
	ExecutionTime float64  `json:"execution_time"` // milliseconds
	Columns       []string `json:"columns"`
	Values        [][]any  `json:"values"`
}
