package delivery

import (
	"errors"
	"net/http"
	"net/url"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", RequireJSON(), h.CreateProduct)
		products.PATCH("", RequireJSON(), h.BulkRecategorize)
		products.DELETE("", RequireJSON(), h.BulkDelete)
		products.GET("/:id", h.GetProduct)
		products.PATCH("/:id", RequireJSON(), h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Request.Context())
	if err != nil {
		writeStorageError(c, h.log, err, opListProducts)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, badParam := validateProductIDParam(c.Param("id"))
	if badParam != "" {
		errorJSON(c, http.StatusBadRequest, badParam)
		return
	}

	product, err := h.useCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Product not found")
			return
		}
		writeStorageError(c, h.log, err, opGetProduct)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if status, message := bindJSON(c, &req); status != 0 {
		errorJSON(c, status, message)
		return
	}

	fields, err := req.Validate()
	if err != nil {
		errorJSON(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	product, err := h.useCase.CreateProduct(c.Request.Context(), fields)
	if err != nil {
		writeStorageError(c, h.log, err, opCreateProduct)
		return
	}

	c.Header("Location", "/products/"+url.PathEscape(product.ID))
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, badParam := validateProductIDParam(c.Param("id"))
	if badParam != "" {
		errorJSON(c, http.StatusBadRequest, badParam)
		return
	}

	var req updateProductRequest
	if status, message := bindJSON(c, &req); status != 0 {
		errorJSON(c, status, message)
		return
	}

	upd, err := req.Validate()
	if err != nil {
		errorJSON(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	product, err := h.useCase.UpdateProduct(c.Request.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFieldsToUpdate):
			errorJSON(c, http.StatusUnprocessableEntity, "No valid fields to update")
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, "Product not found")
		default:
			writeStorageError(c, h.log, err, opUpdateProduct)
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, badParam := validateProductIDParam(c.Param("id"))
	if badParam != "" {
		errorJSON(c, http.StatusBadRequest, badParam)
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Product not found")
			return
		}
		writeStorageError(c, h.log, err, opDeleteProduct)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkRecategorize moves a set of products into another category with a
// single statement. Ids that do not exist are skipped, which is why the
// response reports the affected count.
func (h *ProductHandler) BulkRecategorize(c *gin.Context) {
	var req bulkRecategorizeRequest
	if status, message := bindJSON(c, &req); status != 0 {
		errorJSON(c, status, message)
		return
	}

	ids, categoryName, err := req.Validate()
	if err != nil {
		errorJSON(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updated, err := h.useCase.RecategorizeProducts(c.Request.Context(), ids, categoryName)
	if err != nil {
		writeStorageError(c, h.log, err, opBulkRecategorize)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *ProductHandler) BulkDelete(c *gin.Context) {
	var req bulkDeleteRequest
	if status, message := bindJSON(c, &req); status != 0 {
		errorJSON(c, status, message)
		return
	}

	ids, err := req.Validate()
	if err != nil {
		errorJSON(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if _, err := h.useCase.DeleteProducts(c.Request.Context(), ids); err != nil {
		writeStorageError(c, h.log, err, opBulkDelete)
		return
	}
	c.Status(http.StatusNoContent)
}
