// internal/models/user.go
package models

// User is a profile record. There is no credential material: sign-in only
// upserts a profile and mints a session token, it gates nothing.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}
