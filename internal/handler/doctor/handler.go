package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/healthrecord-api/internal/handler"
	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/service/doctor"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

type Handler struct {
	svc doctor.DoctorService
}

func NewHandler(svc doctor.DoctorService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes splits the doctor surface: reads are public, mutations
// require authentication. There is no ownership on doctors; any
// authenticated caller may mutate any doctor.
func (h *Handler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/doctors", h.ListDoctors)
	public.GET("/doctors/:id", h.GetDoctor)

	authed.POST("/doctors", h.CreateDoctor)
	authed.PUT("/doctors/:id", h.UpdateDoctor)
	authed.DELETE("/doctors/:id", h.DeleteDoctor)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("doctor name is required"))
		return
	}

	created, err := h.svc.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.ListDoctors(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("doctor"))
		return
	}

	found, err := h.svc.GetDoctor(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("doctor"))
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid request body"))
		return
	}

	updated, err := h.svc.UpdateDoctor(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.RespondError(c, apperrors.NotFound("doctor"))
		return
	}

	if err := h.svc.DeleteDoctor(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse("doctor deleted successfully"))
}
