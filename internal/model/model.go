// Package model holds the records exchanged between the HTTP layer and
// the store, one sub-package per entity.
package model

// MessageResponse is the body of every successful write.
//
// ID is set when the write created a record.
type MessageResponse struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

// NewMessage builds a MessageResponse without an id.
func NewMessage(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewCreatedMessage builds a MessageResponse carrying the new record's id.
func NewCreatedMessage(message string, id int64) MessageResponse {
	return MessageResponse{Message: message, ID: &id}
}
