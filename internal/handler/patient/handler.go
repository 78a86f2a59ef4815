package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/healthrecord-api/internal/handler"
	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/service/patient"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

type Handler struct {
	svc patient.PatientService
}

func NewHandler(svc patient.PatientService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers every patient route on the authenticated
// group; there is no public patient surface.
func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	patients := authed.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	callerID, ok := handler.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("unauthorized"))
		return
	}

	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("patient name is required"))
		return
	}

	created, err := h.svc.CreatePatient(c.Request.Context(), callerID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListPatients(c *gin.Context) {
	callerID, ok := handler.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("unauthorized"))
		return
	}

	patients, err := h.svc.ListPatients(c.Request.Context(), callerID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) GetPatient(c *gin.Context) {
	callerID, ok := handler.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id never resolves, same as an unknown one.
		handler.RespondError(c, apperrors.NotFound("patient"))
		return
	}

	found, err := h.svc.GetPatient(c.Request.Context(), id, callerID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	callerID, ok := handler.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("patient"))
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid request body"))
		return
	}

	updated, err := h.svc.UpdatePatient(c.Request.Context(), id, callerID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	callerID, ok := handler.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("patient"))
		return
	}

	if err := h.svc.DeletePatient(c.Request.Context(), id, callerID); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("patient deleted successfully"))
}
