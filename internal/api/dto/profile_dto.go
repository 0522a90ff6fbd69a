package dto

import "github.com/mobdesk/helpdesk-core/internal/domain"

// ProfileResponse describes the signed-in user's profile.
type ProfileResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// StatsResponse carries profile ticket counters.
type StatsResponse struct {
	TotalCreated  int64 `json:"total_created"`
	TotalAssigned int64 `json:"total_assigned"`
	OpenMine      int64 `json:"open_mine"`
	ClosedMine    int64 `json:"closed_mine"`
}

// DirectoryEntry is one assignee-picker option.
type DirectoryEntry struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
