package domain

// StatusResponse is the envelope the UI shell expects from the lead
// endpoint: {ok:true} or {ok:false, error:<message>}.
type StatusResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
