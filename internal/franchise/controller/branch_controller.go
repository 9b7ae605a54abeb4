package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"franchises/internal/dto"
)

type BranchController struct {
	responder
	add        AddBranchUseCase
	updateName UpdateBranchNameUseCase
}

func NewBranchController(add AddBranchUseCase, updateName UpdateBranchNameUseCase, logger *zap.Logger) *BranchController {
	return &BranchController{
		responder:  responder{logger: logger},
		add:        add,
		updateName: updateName,
	}
}

func (c *BranchController) Add(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	var req dto.BranchRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	if details := validateBranchRequest("", req); len(details) > 0 {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	branch, err := c.add.AddBranch(r.Context(), chi.URLParam(r, "franchiseId"), toDomainBranch(req))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toBranchResponse(branch))
}

func (c *BranchController) UpdateName(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	var req dto.UpdateNameRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	if details := requireName("name", req.Name); details != nil {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	branch, err := c.updateName.UpdateName(r.Context(),
		chi.URLParam(r, "franchiseId"), chi.URLParam(r, "branchId"), req.Name)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toBranchResponse(branch))
}
