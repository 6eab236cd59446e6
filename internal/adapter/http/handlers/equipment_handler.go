package handlers

import (
	request "catalogo_equipamentos/internal/adapter/http/dto/request"
	response "catalogo_equipamentos/internal/adapter/http/dto/response"
	"catalogo_equipamentos/internal/domain/schema"
	"catalogo_equipamentos/internal/usecase"
	"catalogo_equipamentos/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEquipmentPayload = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Invalid equipment payload", http.StatusBadRequest)
	errInvalidListQuery        = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errEquipmentValidation     = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid equipment", http.StatusBadRequest)
)

// EquipmentHandler serves the equipment catalog: list/detail reads through the
// query use case, create/update/delete through the lifecycle use case.
type EquipmentHandler struct {
	usecase usecase.IEquipmentUseCase
	query   usecase.IEquipmentQueryUseCase
}

func NewEquipmentHandler(uc usecase.IEquipmentUseCase, query usecase.IEquipmentQueryUseCase) *EquipmentHandler {
	return &EquipmentHandler{usecase: uc, query: query}
}

// ListEquipments godoc
// @Summary      List equipments
// @Description  Paginated catalog filtered by type and free text over marca/modelo
// @Tags         equipments
// @Produce      json
// @Param        q      query  string  false  "Text matched against marca or modelo"
// @Param        type   query  string  false  "Equipment type or Todos"
// @Param        page   query  int     false  "Page number (1-based)"
// @Param        limit  query  int     false  "Page size (max 100)"
// @Success      200  {object}  response.EquipmentPageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /equipments [get]
func (h *EquipmentHandler) ListEquipments(c *gin.Context) {
	var req request.ListEquipmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	page, err := h.query.List(c.Request.Context(), req.ToQuery())
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipmentPage(page))
}

// GetEquipment godoc
// @Summary      Get equipment
// @Tags         equipments
// @Produce      json
// @Param        id   path      string  true  "Equipment ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  pkg.HTTPError
// @Router       /equipments/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	equipment, err := h.query.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipment(equipment))
}

// CreateEquipment godoc
// @Summary      Create equipment
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        equipment  body      map[string]any  true  "Flat equipment form"
// @Success      201        {object}  response.EquipmentCreatedResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /equipments [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	payload, ok := bindEquipmentPayload(c)
	if !ok {
		return
	}

	equipment, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.EquipmentCreatedResponse{ID: equipment.ID})
}

// UpdateEquipment godoc
// @Summary      Update equipment
// @Description  Partial update; switching type clears the previous technical fields
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        id         path      string          true  "Equipment ID"
// @Param        equipment  body      map[string]any  true  "Fields to change"
// @Success      200        {object}  map[string]any
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /equipments/{id} [patch]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	payload, ok := bindEquipmentPayload(c)
	if !ok {
		return
	}

	equipment, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEquipment(equipment))
}

// DeleteEquipment godoc
// @Summary      Delete equipment
// @Tags         equipments
// @Param        id   path  string  true  "Equipment ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /equipments/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEquipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEquipmentTypes godoc
// @Summary      Equipment type registry
// @Description  Technical fields, units and energy options per type
// @Tags         equipments
// @Produce      json
// @Success      200  {array}  schema.TypeDescriptor
// @Router       /equipment-types [get]
func (h *EquipmentHandler) ListEquipmentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.query.Types())
}

func bindEquipmentPayload(c *gin.Context) (request.EquipmentPayload, bool) {
	var payload request.EquipmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return nil, false
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return nil, false
	}
	return payload, true
}

func mapEquipmentError(err error) *pkg.AppError {
	var validationErr *schema.ValidationError
	switch {
	case errors.As(err, &validationErr):
		details := make([]pkg.FieldDetail, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			details = append(details, pkg.FieldDetail{Field: f.Field, Message: f.Message})
		}
		return errEquipmentValidation.WithDetails(details)
	case errors.Is(err, usecase.ErrInvalidEquipmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
