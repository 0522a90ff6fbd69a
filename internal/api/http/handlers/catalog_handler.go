package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mobdesk/helpdesk-core/internal/domain"
)

// CatalogHandler serves the static option sets offered by the ticket
// form.
type CatalogHandler struct{}

// NewCatalogHandler constructs handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Get GET /catalog?category=x — all option sets; subcategories follow
// the requested category.
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{
		"categories":    domain.Categories(),
		"subcategories": domain.SubcategoriesFor(c.Query("category")),
		"departments":   domain.Departments(),
		"priorities": []domain.TicketPriority{
			domain.TicketPriorityLow,
			domain.TicketPriorityMedium,
			domain.TicketPriorityHigh,
		},
		"support_types": []domain.SupportType{
			domain.SupportTypeRemote,
			domain.SupportTypeOnsite,
			domain.SupportTypeTelephone,
		},
		"statuses": []domain.TicketStatus{
			domain.TicketStatusOpen,
			domain.TicketStatusInProgress,
			domain.TicketStatusClosed,
		},
	}})
}
