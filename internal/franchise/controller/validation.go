package controller

import (
	"fmt"

	"franchises/internal/domain"
	"franchises/internal/dto"
	apperrors "franchises/internal/errors"
)

func requireName(field, name string) []apperrors.ValidationDetail {
	if domain.IsBlank(name) {
		return []apperrors.ValidationDetail{{Field: field, Message: field + " is required"}}
	}
	return nil
}

func validateProductRequest(prefix string, req dto.ProductRequest) []apperrors.ValidationDetail {
	details := requireName(prefix+"name", req.Name)

	switch {
	case req.Stock == nil:
		details = append(details, apperrors.ValidationDetail{
			Field:   prefix + "stock",
			Message: prefix + "stock is required",
		})
	case *req.Stock < 0:
		details = append(details, apperrors.ValidationDetail{
			Field:   prefix + "stock",
			Message: prefix + "stock must be zero or greater",
		})
	}

	return details
}

func validateBranchRequest(prefix string, req dto.BranchRequest) []apperrors.ValidationDetail {
	details := requireName(prefix+"name", req.Name)
	for i, p := range req.Products {
		details = append(details, validateProductRequest(fmt.Sprintf("%sproducts[%d].", prefix, i), p)...)
	}
	return details
}

func validateCreateFranchiseRequest(req dto.CreateFranchiseRequest) error {
	details := requireName("name", req.Name)
	for i, b := range req.Branches {
		details = append(details, validateBranchRequest(fmt.Sprintf("branches[%d].", i), b)...)
	}
	return validationResult(details)
}

func validationResult(details []apperrors.ValidationDetail) error {
	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
