package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
)

type Handler struct {
	services *service.Services

	// picturesDir is the directory stored profile pictures are served from.
	picturesDir string

	// requestTimeout bounds the handling time of a single inbound request.
	// Zero disables the timeout middleware.
	requestTimeout time.Duration

	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		picturesDir:    cfg.Storage.Files.ProfilePictureDir,
		requestTimeout: cfg.Server.RequestTimeout,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// writeSuccess writes the uniform success envelope with the given payload.
func writeSuccess(w http.ResponseWriter, message string, data any, statusCode int) {
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// writeError writes the uniform failure envelope.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.Response{
		Success: false,
		Message: message,
	}, statusCode)
}
