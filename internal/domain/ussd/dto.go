// Package ussd holds the gateway-facing payloads for USSD traffic.
package ussd

// HandleRequest is what the USSD gateway posts on every keypress.
type HandleRequest struct {
	SessionID   string `json:"session_id" binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Text        string `json:"text"`
}

// HandleResponse mirrors the gateway contract: the menu text to render
// and whether the session is finished.
type HandleResponse struct {
	SessionID  string `json:"session_id"`
	Message    string `json:"message"`
	EndSession bool   `json:"end_session"`
}
