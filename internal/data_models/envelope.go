package dto

// Envelope is the uniform response wrapper; only the stats summary endpoint
// is served without it.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
