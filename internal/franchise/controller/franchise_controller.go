package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"franchises/internal/dto"
	apperrors "franchises/internal/errors"
)

type FranchiseController struct {
	responder
	create     CreateFranchiseUseCase
	get        GetFranchiseUseCase
	updateName UpdateFranchiseNameUseCase
	maxStock   GetMaxStockUseCase
}

func NewFranchiseController(
	create CreateFranchiseUseCase,
	get GetFranchiseUseCase,
	updateName UpdateFranchiseNameUseCase,
	maxStock GetMaxStockUseCase,
	logger *zap.Logger,
) *FranchiseController {
	return &FranchiseController{
		responder:  responder{logger: logger},
		create:     create,
		get:        get,
		updateName: updateName,
		maxStock:   maxStock,
	}
}

func (c *FranchiseController) Create(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	var req dto.CreateFranchiseRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	if err := validateCreateFranchiseRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	created, err := c.create.Create(r.Context(), toDomainFranchise(req))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toFranchiseResponse(created))
}

func (c *FranchiseController) Get(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	franchise, err := c.get.Get(r.Context(), chi.URLParam(r, "franchiseId"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toFranchiseResponse(franchise))
}

func (c *FranchiseController) UpdateName(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	var req dto.UpdateNameRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	if details := requireName("name", req.Name); details != nil {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	franchise, err := c.updateName.UpdateName(r.Context(), chi.URLParam(r, "franchiseId"), req.Name)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toFranchiseResponse(franchise))
}

func (c *FranchiseController) GetMaxStock(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	view, err := c.maxStock.GetMaxStock(r.Context(), chi.URLParam(r, "franchiseId"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toMaxStockResponse(view))
}
