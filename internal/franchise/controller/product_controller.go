package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"franchises/internal/domain"
	"franchises/internal/dto"
)

type ProductController struct {
	responder
	add    AddProductUseCase
	update UpdateProductUseCase
	remove DeleteProductUseCase
}

func NewProductController(add AddProductUseCase, update UpdateProductUseCase, remove DeleteProductUseCase, logger *zap.Logger) *ProductController {
	return &ProductController{
		responder: responder{logger: logger},
		add:       add,
		update:    update,
		remove:    remove,
	}
}

func (c *ProductController) Add(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	var req dto.ProductRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	if details := validateProductRequest("", req); len(details) > 0 {
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	product, err := c.add.AddProduct(r.Context(),
		chi.URLParam(r, "franchiseId"), chi.URLParam(r, "branchId"), toDomainProduct(req))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// Update applies a partial update: a blank name is ignored and stock is added
// to the current value.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	var req dto.UpdateProductRequest
	if !c.decode(w, r, traceID, &req, logger) {
		return
	}

	patch := domain.ProductPatch{Name: req.Name, StockDelta: req.Stock}
	product, err := c.update.UpdateProduct(r.Context(),
		chi.URLParam(r, "franchiseId"), chi.URLParam(r, "branchId"), chi.URLParam(r, "productId"), patch)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID, logger := c.trace()

	err := c.remove.DeleteProduct(r.Context(),
		chi.URLParam(r, "franchiseId"), chi.URLParam(r, "branchId"), chi.URLParam(r, "productId"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
