package domain

import "time"

// User identifies a person collecting or managing survey data.
type User struct {
	// ID is the identity provider's subject for the user.
	ID string
	// Email is the address used for survey access control.
	Email string
	// DisplayName is the human-readable name shown next to collected data.
	DisplayName string
}

// AuditInfo records who changed an entity and when.
type AuditInfo struct {
	// User is the author of the change.
	User User
	// ClientTimestamp is the time the change was made on the collecting device.
	ClientTimestamp time.Time
	// ServerTimestamp is the time the change reached the server. Zero until synced.
	ServerTimestamp time.Time
}

// NewAuditInfo returns audit info for a change made by user at clientTime.
func NewAuditInfo(user User, clientTime time.Time) AuditInfo {
	return AuditInfo{User: user, ClientTimestamp: clientTime}
}
