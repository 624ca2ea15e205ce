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

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", RequireJSON(), h.CreateCategory)
		categories.GET("/:name", h.GetCategory)
		categories.PATCH("/:name", RequireJSON(), h.UpdateCategory)
		categories.DELETE("/:name", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		writeStorageError(c, h.log, err, opListCategories)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	name, badParam := validateCategoryNameParam(c.Param("name"))
	if badParam != "" {
		errorJSON(c, http.StatusBadRequest, badParam)
		return
	}

	category, err := h.useCase.GetCategory(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Category not found")
			return
		}
		writeStorageError(c, h.log, err, opGetCategory)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if status, message := bindJSON(c, &req); status != 0 {
		errorJSON(c, status, message)
		return
	}

	name, err := req.Validate()
	if err != nil {
		errorJSON(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	category, err := h.useCase.CreateCategory(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			errorJSON(c, http.StatusConflict, "Category already exists")
			return
		}
		writeStorageError(c, h.log, err, opCreateCategory)
		return
	}

	c.Header("Location", "/categories/"+url.PathEscape(category.Name))
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	name, badParam := validateCategoryNameParam(c.Param("name"))
	if badParam != "" {
		errorJSON(c, http.StatusBadRequest, badParam)
		return
	}

	var req updateCategoryRequest
	if status, message := bindJSON(c, &req); status != 0 {
		errorJSON(c, status, message)
		return
	}

	upd, err := req.Validate()
	if err != nil {
		errorJSON(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	category, err := h.useCase.UpdateCategory(c.Request.Context(), name, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFieldsToUpdate):
			errorJSON(c, http.StatusUnprocessableEntity, "No valid fields to update")
		case errors.Is(err, domain.ErrNotFound):
			errorJSON(c, http.StatusNotFound, "Category not found")
		default:
			writeStorageError(c, h.log, err, opRenameCategory)
		}
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	name, badParam := validateCategoryNameParam(c.Param("name"))
	if badParam != "" {
		errorJSON(c, http.StatusBadRequest, badParam)
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorJSON(c, http.StatusNotFound, "Category not found")
			return
		}
		writeStorageError(c, h.log, err, opDeleteCategory)
		return
	}
	c.Status(http.StatusNoContent)
}
