package mapping

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/healthrecord-api/internal/handler"
	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/service/mapping"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

type Handler struct {
	svc mapping.MappingService
}

func NewHandler(svc mapping.MappingService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes keeps the global listing public while creation,
// per-patient reads, and deletion require authentication. The
// per-patient listing is authenticated but not ownership-filtered, a
// known gap in the access model that is preserved deliberately.
func (h *Handler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/mappings", h.ListMappings)

	authed.POST("/mappings", h.CreateMapping)
	authed.GET("/mappings/:patientId", h.ListPatientMappings)
	authed.DELETE("/mappings/:id", h.DeleteMapping)
}

func (h *Handler) CreateMapping(c *gin.Context) {
	callerID, ok := handler.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("unauthorized"))
		return
	}

	var req model.CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("patient ID and doctor ID are required"))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("patient"))
		return
	}

	// The doctor id is taken at face value; nothing checks it against
	// the doctors table, so a bogus id yields an orphaned mapping.
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	created, err := h.svc.CreateMapping(c.Request.Context(), callerID, patientID, doctorID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListMappings(c *gin.Context) {
	mappings, err := h.svc.ListMappings(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(mappings))
}

func (h *Handler) ListPatientMappings(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("patient"))
		return
	}

	mappings, err := h.svc.ListPatientMappings(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(mappings))
}

func (h *Handler) DeleteMapping(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("mapping"))
		return
	}

	if err := h.svc.DeleteMapping(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("mapping deleted successfully"))
}
