package model

// InvokeResponse represents a successful POST /invoke/{command}.
// Result is a string for save/read commands and a bool for wallet_exists.
type InvokeResponse struct {
	Result any `json:"result"`
}
