package delivery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func TestIsUUIDv4(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"canonical v4", "3fa85f64-5717-4562-b3fc-2c963f66afa6", true},
		{"uppercase hex", "3FA85F64-5717-4562-B3FC-2C963F66AFA6", true},
		{"variant 9", "3fa85f64-5717-4562-93fc-2c963f66afa6", true},
		{"not a uuid", "not-a-uuid", false},
		{"empty", "", false},
		{"version 1", "3fa85f64-5717-1562-b3fc-2c963f66afa6", false},
		{"bad variant", "3fa85f64-5717-4562-c3fc-2c963f66afa6", false},
		{"compact form rejected", "3fa85f6457174562b3fc2c963f66afa6", false},
		{"urn form rejected", "urn:uuid:3fa85f64-5717-4562-b3fc-2c963f66afa6", false},
		{"truncated", "3fa85f64-5717-4562-b3fc", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, isUUIDv4(tc.input))
		})
	}
}

func TestValidateProductIDParam(t *testing.T) {
	id, msg := validateProductIDParam("  3fa85f64-5717-4562-b3fc-2c963f66afa6  ")
	assert.Empty(t, msg)
	assert.Equal(t, "3fa85f64-5717-4562-b3fc-2c963f66afa6", id)

	_, msg = validateProductIDParam("   ")
	assert.Equal(t, "Invalid product id", msg)

	_, msg = validateProductIDParam("not-a-uuid")
	assert.Equal(t, "Invalid product id format", msg)
}

func TestValidateCategoryNameParam(t *testing.T) {
	name, msg := validateCategoryNameParam(" Books ")
	assert.Empty(t, msg)
	assert.Equal(t, "Books", name)

	_, msg = validateCategoryNameParam("   ")
	assert.Equal(t, "Invalid category name", msg)
}

func TestCreateCategoryRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		req     createCategoryRequest
		want    string
		wantErr bool
	}{
		{"valid", createCategoryRequest{Name: strPtr("Books")}, "Books", false},
		{"trimmed", createCategoryRequest{Name: strPtr("  Books  ")}, "Books", false},
		{"missing", createCategoryRequest{}, "", true},
		{"empty after trim", createCategoryRequest{Name: strPtr("   ")}, "", true},
		{"max length accepted", createCategoryRequest{Name: strPtr(strings.Repeat("a", 32))}, strings.Repeat("a", 32), false},
		{"over max rejected", createCategoryRequest{Name: strPtr(strings.Repeat("a", 33))}, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUpdateCategoryRequestValidate(t *testing.T) {
	upd, err := updateCategoryRequest{}.Validate()
	require.NoError(t, err)
	assert.True(t, upd.IsEmpty())

	upd, err = updateCategoryRequest{Name: strPtr(" Literature ")}.Validate()
	require.NoError(t, err)
	require.NotNil(t, upd.Name)
	assert.Equal(t, "Literature", *upd.Name)

	_, err = updateCategoryRequest{Name: strPtr("  ")}.Validate()
	assert.Error(t, err)
}

func TestCreateProductRequestValidate(t *testing.T) {
	valid := createProductRequest{
		Name:         strPtr("  Paperback novel  "),
		Price:        intPtr(19),
		CategoryName: strPtr(" Books "),
	}
	fields, err := valid.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Paperback novel", fields.Name)
	assert.Equal(t, int64(19), fields.Price)
	assert.Equal(t, "Books", fields.CategoryName)

	testCases := []struct {
		name string
		req  createProductRequest
	}{
		{"missing name", createProductRequest{Price: intPtr(19), CategoryName: strPtr("Books")}},
		{"name too short", createProductRequest{Name: strPtr("Pen"), Price: intPtr(19), CategoryName: strPtr("Books")}},
		{"name too long", createProductRequest{Name: strPtr(strings.Repeat("a", 65)), Price: intPtr(19), CategoryName: strPtr("Books")}},
		{"missing price", createProductRequest{Name: strPtr("Paperback novel"), CategoryName: strPtr("Books")}},
		{"negative price", createProductRequest{Name: strPtr("Paperback novel"), Price: intPtr(-1), CategoryName: strPtr("Books")}},
		{"missing category", createProductRequest{Name: strPtr("Paperback novel"), Price: intPtr(19)}},
		{"blank category", createProductRequest{Name: strPtr("Paperback novel"), Price: intPtr(19), CategoryName: strPtr("  ")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.req.Validate()
			assert.Error(t, err)
		})
	}
}

func TestUpdateProductRequestValidate(t *testing.T) {
	upd, err := updateProductRequest{}.Validate()
	require.NoError(t, err)
	assert.True(t, upd.IsEmpty())

	upd, err = updateProductRequest{Price: intPtr(0)}.Validate()
	require.NoError(t, err)
	require.NotNil(t, upd.Price)
	assert.Zero(t, *upd.Price)

	_, err = updateProductRequest{Price: intPtr(-1)}.Validate()
	assert.Error(t, err)

	_, err = updateProductRequest{Name: strPtr("Pen")}.Validate()
	assert.Error(t, err, "short names rejected on update too")
}

func TestBulkRequestValidate(t *testing.T) {
	validID := "3fa85f64-5717-4562-b3fc-2c963f66afa6"

	ids, categoryName, err := bulkRecategorizeRequest{
		IDs:          []string{" " + validID + " "},
		CategoryName: strPtr(" Books "),
	}.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{validID}, ids)
	assert.Equal(t, "Books", categoryName)

	_, _, err = bulkRecategorizeRequest{IDs: []string{validID}}.Validate()
	assert.Error(t, err, "categoryName required")

	_, _, err = bulkRecategorizeRequest{IDs: nil, CategoryName: strPtr("Books")}.Validate()
	assert.Error(t, err, "empty id set rejected")

	_, _, err = bulkRecategorizeRequest{IDs: []string{validID, "nope"}, CategoryName: strPtr("Books")}.Validate()
	assert.Error(t, err, "every id must be a v4 uuid")

	_, err = bulkDeleteRequest{IDs: []string{validID}}.Validate()
	assert.NoError(t, err)

	_, err = bulkDeleteRequest{IDs: []string{}}.Validate()
	assert.Error(t, err)
}
