package delivery

import (
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the only error body the API emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// operation identifies which endpoint hit the storage layer. The failure
// category alone does not determine the response: a foreign-key failure means
// one thing on a category rename and another on a product write.
type operation int

const (
	opListCategories operation = iota
	opGetCategory
	opCreateCategory
	opRenameCategory
	opDeleteCategory
	opListProducts
	opGetProduct
	opCreateProduct
	opUpdateProduct
	opDeleteProduct
	opBulkRecategorize
	opBulkDelete
)

func fallbackMessage(op operation) string {
	switch op {
	case opListCategories:
		return "Failed to fetch categories"
	case opGetCategory:
		return "Failed to fetch category"
	case opCreateCategory:
		return "Failed to create category"
	case opRenameCategory:
		return "Failed to update category"
	case opDeleteCategory:
		return "Failed to delete category"
	case opListProducts:
		return "Failed to fetch products"
	case opGetProduct:
		return "Failed to fetch product"
	case opCreateProduct:
		return "Failed to create product"
	case opUpdateProduct:
		return "Failed to update product"
	case opDeleteProduct:
		return "Failed to delete product"
	case opBulkRecategorize:
		return "Failed to update products"
	case opBulkDelete:
		return "Failed to delete products"
	default:
		return "Internal server error"
	}
}

// writeStorageError renders a classified storage failure as the wire-stable
// status and message for the given operation. The table is part of the API
// contract; change it only together with the clients.
func writeStorageError(c *gin.Context, log *logrus.Logger, err error, op operation) {
	category := domain.FailureOf(err)

	switch category {
	case domain.FailureUniqueness:
		log.Warnf("Uniqueness conflict on %s: %v", fallbackMessage(op), err)
		if op == opCreateCategory || op == opRenameCategory {
			errorJSON(c, http.StatusConflict, "Category already exists")
			return
		}
		errorJSON(c, http.StatusConflict, "Resource conflict")

	case domain.FailureForeignKey:
		log.Warnf("Referential conflict on %s: %v", fallbackMessage(op), err)
		switch op {
		case opRenameCategory:
			errorJSON(c, http.StatusConflict, "Cannot rename category while products reference it")
		case opCreateProduct, opUpdateProduct, opBulkRecategorize:
			errorJSON(c, http.StatusUnprocessableEntity, "categoryName does not exist")
		default:
			errorJSON(c, http.StatusConflict, "Referential integrity conflict")
		}

	case domain.FailureCheckConstraint:
		log.Warnf("Check constraint violation on %s: %v", fallbackMessage(op), err)
		switch op {
		case opRenameCategory:
			errorJSON(c, http.StatusUnprocessableEntity, "Validation failed for category update")
		case opCreateProduct:
			errorJSON(c, http.StatusUnprocessableEntity, "Validation failed for product creation")
		case opUpdateProduct, opBulkRecategorize:
			errorJSON(c, http.StatusUnprocessableEntity, "Validation failed for product update")
		default:
			errorJSON(c, http.StatusUnprocessableEntity, "Validation failed")
		}

	case domain.FailureBusy:
		log.Warnf("Database busy: %v", err)
		c.Header("Retry-After", "1")
		errorJSON(c, http.StatusServiceUnavailable, "Database is busy, please retry")

	case domain.FailureFull:
		log.Errorf("Database full: %v", err)
		errorJSON(c, http.StatusInsufficientStorage, "Database is full")

	case domain.FailureReadOnly:
		log.Errorf("Database read-only: %v", err)
		errorJSON(c, http.StatusServiceUnavailable, "Database is read-only")

	case domain.FailureRange:
		log.Warnf("Parameter binding out of range: %v", err)
		errorJSON(c, http.StatusBadRequest, "Invalid query parameters")

	case domain.FailureMismatch:
		log.Warnf("Datatype mismatch: %v", err)
		errorJSON(c, http.StatusBadRequest, "Invalid data type")

	case domain.FailureTooBig:
		log.Warnf("Value too large for storage: %v", err)
		errorJSON(c, http.StatusRequestEntityTooLarge, "Payload too large")

	case domain.FailurePermission:
		log.Errorf("Database unavailable: %v", err)
		errorJSON(c, http.StatusServiceUnavailable, "Database unavailable")

	default:
		log.Errorf("%s: %v", fallbackMessage(op), err)
		errorJSON(c, http.StatusInternalServerError, fallbackMessage(op))
	}
}
