package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobdesk/helpdesk-core/internal/api/dto"
	"github.com/mobdesk/helpdesk-core/internal/auth"
	"github.com/mobdesk/helpdesk-core/internal/service"
	apperrors "github.com/mobdesk/helpdesk-core/pkg/util"
)

// ProfileHandler serves the profile screen endpoints.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profileService}
}

// Me GET /profile — the signed-in profile with ticket stats. Role
// comes from the session resolution, so an unknown role renders as
// agent here without being persisted anywhere.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	stats, err := h.profiles.Stats(c.Context(), sess.User.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"profile": dto.ProfileResponse{
			ID:    sess.User.ID,
			Email: sess.User.Email,
			Role:  sess.Role.OrAgent(),
		},
		"stats": dto.StatsResponse{
			TotalCreated:  stats.TotalCreated,
			TotalAssigned: stats.TotalAssigned,
			OpenMine:      stats.OpenMine,
			ClosedMine:    stats.ClosedMine,
		},
	}})
}

// Directory GET /profile/directory — assignee picker options ordered
// by email.
func (h *ProfileHandler) Directory(c *fiber.Ctx) error {
	if _, ok := auth.SessionFromContext(c); !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	profiles, err := h.profiles.Directory(c.Context())
	if err != nil {
		return err
	}
	entries := make([]dto.DirectoryEntry, 0, len(profiles))
	for _, profile := range profiles {
		entries = append(entries, dto.DirectoryEntry{ID: profile.ID, Email: profile.Email})
	}
	return c.JSON(fiber.Map{"data": entries})
}
