package model

// SaveRequest represents request for POST /wallet/save.
// Data is required; when Address is omitted only the keystore is written.
type SaveRequest struct {
	Data    *string `json:"data" binding:"required"`
	Address *string `json:"address,omitempty"`
}

// SaveResponse represents response for POST /wallet/save
type SaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// KeystoreResponse represents response for GET /wallet/keystore
type KeystoreResponse struct {
	Data string `json:"data"`
}

// AddressResponse represents response for GET /wallet/address
type AddressResponse struct {
	Address string `json:"address"`
}

// ExistsResponse represents response for GET /wallet/exists
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
