package models

const (
	ProxyStatusSuccess = "success"
	ProxyStatusError   = "error"

	NlogNote = "Nlog conversion will be added"
)

// RelaySuccess ответ клиенту, когда OpenPanel ответил (любым статусом)
type RelaySuccess struct {
	ProxyStatus       string `json:"proxy_status"`
	RequestID         string `json:"request_id"`
	OpenPanelStatus   int    `json:"openpanel_status"`
	OpenPanelResponse any    `json:"openpanel_response"`
	ProcessingTimeMs  int64  `json:"processing_time_ms"`
	Note              string `json:"note,omitempty"`
}

// RelayError ответ клиенту, когда пересылка не состоялась
type RelayError struct {
	ProxyStatus      string `json:"proxy_status"`
	RequestID        string `json:"request_id"`
	Error            string `json:"error"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Framework    string `json:"framework"`
	Timestamp    string `json:"timestamp"`
	OpenPanelAPI string `json:"openpanel_api"`
}

type NotFoundResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

type InternalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RelayEvent is pushed to websocket subscribers after every relay attempt
type RelayEvent struct {
	RequestID        string `json:"request_id"`
	Endpoint         string `json:"endpoint"`
	ProxyStatus      string `json:"proxy_status"`
	OpenPanelStatus  int    `json:"openpanel_status,omitempty"`
	Error            string `json:"error,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}
