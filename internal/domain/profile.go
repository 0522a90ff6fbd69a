package domain

import "time"

// Role is the coarse authorization tag attached to a profile.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"

	// RoleUnknown marks a session whose profile lookup failed for a
	// reason other than a missing row. Callers treat it as agent for
	// display purposes only.
	RoleUnknown Role = ""
)

// OrAgent returns the role with RoleUnknown rendered as agent. For
// display only; unknown roles are never written back.
func (r Role) OrAgent() Role {
	if r == RoleUnknown {
		return RoleAgent
	}
	return r
}

// Profile pairs a user with a role, one-to-one on User.ID. A missing
// profile is provisioned with RoleAgent on first session resolution.
type Profile struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// ProfileStats summarizes a user's ticket activity.
type ProfileStats struct {
	TotalCreated  int64
	TotalAssigned int64
	OpenMine      int64
	ClosedMine    int64
}
