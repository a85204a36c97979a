package server

import (
	"github.com/adryze/omnidesk/odoo"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

const leadModel = "crm.lead"

// listLeadsHandler handles GET /crm/leads. The status filter matches
// the stage's display name through a dotted field path; an unknown
// status just returns an empty list.
func (s *Server) listLeadsHandler(c fiber.Ctx) error {
	erp := s.erpClient(c)

	domain := odoo.Domain{}.Equals("stage_id.name", c.Query("status"))

	records, err := erp.SearchRead(leadModel, domain, odoo.LeadFields, odoo.Options{Limit: 50})
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch leads")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch leads")
	}

	leads := make([]odoo.Lead, 0, len(records))
	for _, r := range records {
		leads = append(leads, odoo.LeadFromRecord(r))
	}

	return c.JSON(leadsResponse{Leads: leads})
}

// createLeadHandler handles POST /crm/leads. Name and phone are
// validated before any remote call is made.
func (s *Server) createLeadHandler(c fiber.Ctx) error {
	var req createLeadRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" || req.Phone == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Name and phone are required")
	}

	values := map[string]any{
		"name":        req.Name,
		"phone":       req.Phone,
		"type":        "lead",
		"description": req.Notes,
	}
	if req.Email != "" {
		values["email"] = req.Email
	}

	erp := s.erpClient(c)

	leadID, err := erp.Create(leadModel, values)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create lead")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to create lead")
	}

	return c.JSON(fiber.Map{"success": true, "leadId": leadID})
}
