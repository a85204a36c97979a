package server

import (
	"strconv"

	"github.com/adryze/omnidesk/odoo"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// deletionPolicy selects how a resource's DELETE endpoint disposes of
// records: an archive write or a true unlink.
type deletionPolicy int

const (
	archiveRecords deletionPolicy = iota
	hardDeleteRecords
)

// Products are archived, never unlinked: stock moves and order lines
// keep referencing them.
const productDeletion = archiveRecords

const productModel = "product.template"

// listProductsHandler handles GET /inventory/products.
func (s *Server) listProductsHandler(c fiber.Ctx) error {
	erp := s.erpClient(c)

	domain := odoo.Domain{}.Search([]string{"name", "default_code"}, c.Query("search"))

	records, err := erp.SearchRead(productModel, domain, odoo.ProductFields, odoo.Options{Limit: 100})
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch products")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}

	products := make([]odoo.Product, 0, len(records))
	for _, r := range records {
		products = append(products, odoo.ProductFromRecord(r))
	}

	return c.JSON(productsResponse{Products: products})
}

// createProductHandler handles POST /inventory/products.
func (s *Server) createProductHandler(c fiber.Ctx) error {
	var req createProductRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Product name is required")
	}

	erp := s.erpClient(c)

	productID, err := erp.Create(productModel, map[string]any{
		"name":         req.Name,
		"default_code": req.DefaultCode,
		"list_price":   req.ListPrice,
		"type":         "product",
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create product")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to create product")
	}

	return c.JSON(fiber.Map{"success": true, "productId": productID})
}

// updateProductHandler handles PUT /inventory/products. The body is the
// id plus whatever fields should change, forwarded as-is.
func (s *Server) updateProductHandler(c fiber.Ctx) error {
	var body map[string]any
	if err := c.Bind().JSON(&body); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id, ok := numericID(body["id"])
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Product ID is required")
	}
	delete(body, "id")

	erp := s.erpClient(c)

	if _, err := erp.Write(productModel, []int{id}, body); err != nil {
		log.Error().Err(err).Int("product_id", id).Msg("Failed to update product")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to update product")
	}

	return c.JSON(fiber.Map{"success": true})
}

// deleteProductHandler handles DELETE /inventory/products?id=.
func (s *Server) deleteProductHandler(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "Product ID is required")
	}

	erp := s.erpClient(c)

	switch productDeletion {
	case hardDeleteRecords:
		_, err = erp.Unlink(productModel, []int{id})
	default:
		_, err = erp.Write(productModel, []int{id}, map[string]any{"active": false})
	}
	if err != nil {
		log.Error().Err(err).Int("product_id", id).Msg("Failed to delete product")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to delete product")
	}

	return c.JSON(fiber.Map{"success": true})
}

func numericID(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return int(n), true
		}
	case int:
		if n > 0 {
			return n, true
		}
	}
	return 0, false
}
