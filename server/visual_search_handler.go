package server

import (
	"encoding/base64"
	"io"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// visualSearchHandler handles POST /inventory/visual-search. The
// classification itself lives in the automation flow; without a
// configured webhook there is no fallback, so the feature reports 503
// instead of degrading.
func (s *Server) visualSearchHandler(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "No image provided")
	}

	if s.deps.Relay == nil || !s.deps.Relay.Configured() {
		return errorJSON(c, fiber.StatusServiceUnavailable, "Visual search requires the automation webhook; configure N8N_WEBHOOK_URL")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "No image provided")
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded image")
		return errorJSON(c, fiber.StatusInternalServerError, "Visual search failed")
	}

	if s.deps.Archive != nil {
		contentType := fileHeader.Header.Get("Content-Type")
		go func(data []byte, name, ctype string) {
			if _, err := s.deps.Archive.UploadImage(data, name, ctype); err != nil {
				log.Warn().Err(err).Str("filename", name).Msg("Failed to archive visual-search image")
			}
		}(imageData, fileHeader.Filename, contentType)
	}

	result, err := s.deps.Relay.VisualSearch(c.Context(), base64.StdEncoding.EncodeToString(imageData), fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Msg("Visual search relay failed")
		return errorJSON(c, fiber.StatusInternalServerError, "Visual search failed")
	}

	return c.JSON(result)
}
