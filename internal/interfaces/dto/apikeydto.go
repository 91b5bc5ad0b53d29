package dto

// CreateAPIKeyRequest represents HTTP request to create an API key
type CreateAPIKeyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateAPIKeyRequest represents HTTP request to update an API key (PATCH)
// All fields are optional, at least one field must be provided
type UpdateAPIKeyRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Active *bool   `json:"active"`
}
