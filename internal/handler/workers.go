package handler

import (
	"net/http"

	"banaapro/internal/apierror"
	"banaapro/internal/dto"
	"banaapro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkersHandler struct{ svc service.WorkerService }

func NewWorkersHandler(svc service.WorkerService) *WorkersHandler {
	return &WorkersHandler{svc: svc}
}

// Create godoc
// @Summary      Register a worker
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateWorkerRequest true "Worker data"
// @Success      201 {object} dto.WorkerResponse
// @Router       /v1/workers [post]
func (h *WorkersHandler) Create(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WorkersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkersHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.CreateWorkerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordAttendance godoc
// @Summary      Record half-day attendance
// @Description  Marks morning and/or evening presence for a worker on one date.
// @Tags         workers
// @Accept       json
// @Security     BearerAuth
// @Param        id   path string                      true "Worker UUID"
// @Param        body body dto.RecordAttendanceRequest true "Attendance"
// @Success      201
// @Router       /v1/workers/{id}/attendance [post]
func (h *WorkersHandler) RecordAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.RecordAttendanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RecordAttendance(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *WorkersHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	var req dto.RecordWorkerPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RecordPayment(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Statement godoc
// @Summary      Worker payroll statement
// @Description  Days worked at half-day granularity, earned, paid, and balance.
// @Tags         workers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Worker UUID"
// @Success      200 {object} dto.WorkerStatement
// @Router       /v1/workers/{id}/statement [get]
func (h *WorkersHandler) Statement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return
	}
	resp, err := h.svc.Statement(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
