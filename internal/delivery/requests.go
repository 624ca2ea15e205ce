package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	categoryNameMaxLen = 32
	productNameMinLen  = 5
	productNameMaxLen  = 64
)

// isUUIDv4 reports whether s is a canonical 8-4-4-4-12 UUID with version
// nibble 4 and an RFC 4122 variant. The length check rejects the compact and
// urn forms uuid.Parse would otherwise accept.
func isUUIDv4(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

// validateProductIDParam normalizes a product id path parameter. A non-empty
// message means rejection with 400.
func validateProductIDParam(raw string) (id string, message string) {
	id = strings.TrimSpace(raw)
	if id == "" {
		return "", "Invalid product id"
	}
	if !isUUIDv4(id) {
		return "", "Invalid product id format"
	}
	return id, ""
}

// validateCategoryNameParam normalizes a category name path parameter.
func validateCategoryNameParam(raw string) (name string, message string) {
	name = strings.TrimSpace(raw)
	if name == "" {
		return "", "Invalid category name"
	}
	return name, ""
}

// bindJSON decodes the request body into dst. Malformed JSON is a 400; a body
// that is valid JSON but has the wrong shape is a 422 with a field message.
// A zero returned status means success.
func bindJSON(c *gin.Context, dst any) (status int, message string) {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return 0, ""
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return http.StatusUnprocessableEntity,
				fmt.Sprintf("%s must be %s", typeErr.Field, jsonTypeName(typeErr.Type))
		}
		return http.StatusUnprocessableEntity, "Request body has the wrong shape"
	}
	return http.StatusBadRequest, "Invalid JSON body"
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "of type " + t.String()
	}
}

// Request schemas are explicit per entity and per operation rather than
// derived from the storage definitions. Pointer fields distinguish "absent"
// from "zero" so partial updates work.

type createCategoryRequest struct {
	Name *string `json:"name"`
}

func (r createCategoryRequest) Validate() (string, error) {
	if r.Name == nil {
		return "", errors.New("name is required")
	}
	name := strings.TrimSpace(*r.Name)
	if name == "" {
		return "", errors.New("name must not be empty")
	}
	if utf8.RuneCountInString(name) > categoryNameMaxLen {
		return "", fmt.Errorf("name must be at most %d characters", categoryNameMaxLen)
	}
	return name, nil
}

type updateCategoryRequest struct {
	Name *string `json:"name"`
}

func (r updateCategoryRequest) Validate() (domain.CategoryUpdate, error) {
	var upd domain.CategoryUpdate
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return upd, errors.New("name must not be empty")
		}
		if utf8.RuneCountInString(name) > categoryNameMaxLen {
			return upd, fmt.Errorf("name must be at most %d characters", categoryNameMaxLen)
		}
		upd.Name = &name
	}
	return upd, nil
}

type createProductRequest struct {
	Name         *string `json:"name"`
	Price        *int64  `json:"price"`
	CategoryName *string `json:"categoryName"`
}

func (r createProductRequest) Validate() (domain.NewProduct, error) {
	var fields domain.NewProduct

	if r.Name == nil {
		return fields, errors.New("name is required")
	}
	name := strings.TrimSpace(*r.Name)
	if n := utf8.RuneCountInString(name); n < productNameMinLen || n > productNameMaxLen {
		return fields, fmt.Errorf("name must be between %d and %d characters", productNameMinLen, productNameMaxLen)
	}

	if r.Price == nil {
		return fields, errors.New("price is required")
	}
	if *r.Price < 0 {
		return fields, errors.New("price must be a non-negative integer")
	}

	if r.CategoryName == nil {
		return fields, errors.New("categoryName is required")
	}
	categoryName := strings.TrimSpace(*r.CategoryName)
	if categoryName == "" {
		return fields, errors.New("categoryName must not be empty")
	}

	fields.Name = name
	fields.Price = *r.Price
	fields.CategoryName = categoryName
	return fields, nil
}

type updateProductRequest struct {
	Name         *string `json:"name"`
	Price        *int64  `json:"price"`
	CategoryName *string `json:"categoryName"`
}

func (r updateProductRequest) Validate() (domain.ProductUpdate, error) {
	var upd domain.ProductUpdate

	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if n := utf8.RuneCountInString(name); n < productNameMinLen || n > productNameMaxLen {
			return upd, fmt.Errorf("name must be between %d and %d characters", productNameMinLen, productNameMaxLen)
		}
		upd.Name = &name
	}
	if r.Price != nil {
		if *r.Price < 0 {
			return upd, errors.New("price must be a non-negative integer")
		}
		upd.Price = r.Price
	}
	if r.CategoryName != nil {
		categoryName := strings.TrimSpace(*r.CategoryName)
		if categoryName == "" {
			return upd, errors.New("categoryName must not be empty")
		}
		upd.CategoryName = &categoryName
	}
	return upd, nil
}

// validateIDList trims and shape-checks a bulk id set.
func validateIDList(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, errors.New("ids must contain at least one product id")
	}
	out := make([]string, len(ids))
	for i, raw := range ids {
		id := strings.TrimSpace(raw)
		if !isUUIDv4(id) {
			return nil, fmt.Errorf("ids[%d] is not a valid product id", i)
		}
		out[i] = id
	}
	return out, nil
}

type bulkRecategorizeRequest struct {
	IDs          []string `json:"ids"`
	CategoryName *string  `json:"categoryName"`
}

func (r bulkRecategorizeRequest) Validate() (ids []string, categoryName string, err error) {
	ids, err = validateIDList(r.IDs)
	if err != nil {
		return nil, "", err
	}
	if r.CategoryName == nil {
		return nil, "", errors.New("categoryName is required")
	}
	categoryName = strings.TrimSpace(*r.CategoryName)
	if categoryName == "" {
		return nil, "", errors.New("categoryName must not be empty")
	}
	return ids, categoryName, nil
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (r bulkDeleteRequest) Validate() ([]string, error) {
	return validateIDList(r.IDs)
}
