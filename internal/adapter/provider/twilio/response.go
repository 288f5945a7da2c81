package twilio

// messageResponse is the subset of the Messages resource we read back.
type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// errorResponse is the REST error body returned for 4xx/5xx answers.
type errorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}
