package model

// Error codes carried in ErrorResponse.Code.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeIO             = "IO"
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnknownCommand = "UNKNOWN_COMMAND"
	CodeQREncode       = "QR_ENCODE"
)

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
