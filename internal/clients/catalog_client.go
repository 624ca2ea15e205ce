package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"catalog_service/internal/cache"
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// APIError is a non-2xx response decoded into the API's {error} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API returned %d: %s", e.Status, e.Message)
}

// Catalog is an HTTP client for the catalog API. Reads go through an
// explicit cache store; successful mutations invalidate exactly the cached
// views the mutation made stale.
type Catalog struct {
	baseURL string
	client  *http.Client
	cache   *cache.Store
	log     *logrus.Logger
}

func NewCatalogClient(baseURL string, timeout time.Duration, store *cache.Store, logger *logrus.Logger) *Catalog {
	return &Catalog{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		cache: store,
		log:   logger,
	}
}

func (c *Catalog) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("CatalogClient: %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("failed to reach catalog service: %w", err)
	}
	return resp, nil
}

// apiError drains the response and shapes it into an *APIError.
func apiError(resp *http.Response) error {
	defer resp.Body.Close()
	var body struct {
		Error string `json:"error"`
	}
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}

func decodeInto(resp *http.Response, dst any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}

// getJSON serves the query from the cache when a live entry exists, otherwise
// fetches and caches the raw response body.
func (c *Catalog) getJSON(ctx context.Context, path string, key cache.Key, dst any) error {
	if cached, ok := c.cache.Get(key); ok {
		if data, ok := cached.([]byte); ok {
			if err := json.Unmarshal(data, dst); err == nil {
				return nil
			}
		}
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read catalog response: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	c.cache.Put(key, data)
	return nil
}

// invalidate applies a rule's selectors to the client's store.
func (c *Catalog) invalidate(selectors []cache.Selector) {
	removed := c.cache.Invalidate(selectors...)
	if removed > 0 {
		c.log.Debugf("CatalogClient: invalidated %d cached entries", removed)
	}
}

func (c *Catalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, "/categories", cache.CategoriesKey(), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Catalog) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	path := "/categories/" + url.PathEscape(name)
	if err := c.getJSON(ctx, path, cache.CategoryKey(name), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Catalog) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	resp, err := c.do(ctx, http.MethodPost, "/categories", map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var category domain.Category
	if err := decodeInto(resp, &category); err != nil {
		return nil, err
	}
	c.invalidate(cache.CreateCategoryInvalidations())
	return &category, nil
}

func (c *Catalog) RenameCategory(ctx context.Context, name, newName string) (*domain.Category, error) {
	path := "/categories/" + url.PathEscape(name)
	resp, err := c.do(ctx, http.MethodPatch, path, map[string]string{"name": newName})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var category domain.Category
	if err := decodeInto(resp, &category); err != nil {
		return nil, err
	}
	c.invalidate(cache.RenameCategoryInvalidations(name, category.Name))
	return &category, nil
}

func (c *Catalog) DeleteCategory(ctx context.Context, name string) error {
	path := "/categories/" + url.PathEscape(name)
	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	resp.Body.Close()
	c.invalidate(cache.DeleteCategoryInvalidations(name))
	return nil
}

func (c *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, "/products", cache.ProductsKey(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Catalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	path := "/products/" + url.PathEscape(id)
	if err := c.getJSON(ctx, path, cache.ProductKey(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Catalog) CreateProduct(ctx context.Context, fields domain.NewProduct) (*domain.Product, error) {
	body := map[string]any{
		"name":         fields.Name,
		"price":        fields.Price,
		"categoryName": fields.CategoryName,
	}
	resp, err := c.do(ctx, http.MethodPost, "/products", body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var product domain.Product
	if err := decodeInto(resp, &product); err != nil {
		return nil, err
	}
	c.invalidate(cache.CreateProductInvalidations(product.ID))
	return &product, nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, id string, upd domain.ProductUpdate) (*domain.Product, error) {
	body := map[string]any{}
	if upd.Name != nil {
		body["name"] = *upd.Name
	}
	if upd.Price != nil {
		body["price"] = *upd.Price
	}
	if upd.CategoryName != nil {
		body["categoryName"] = *upd.CategoryName
	}

	path := "/products/" + url.PathEscape(id)
	resp, err := c.do(ctx, http.MethodPatch, path, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var product domain.Product
	if err := decodeInto(resp, &product); err != nil {
		return nil, err
	}
	c.invalidate(cache.SaveProductInvalidations(id))
	return &product, nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	path := "/products/" + url.PathEscape(id)
	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	resp.Body.Close()
	c.invalidate(cache.SaveProductInvalidations(id))
	return nil
}

func (c *Catalog) RecategorizeProducts(ctx context.Context, ids []string, categoryName string) (int64, error) {
	body := map[string]any{"ids": ids, "categoryName": categoryName}
	resp, err := c.do(ctx, http.MethodPatch, "/products", body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, apiError(resp)
	}

	var result struct {
		Updated int64 `json:"updated"`
	}
	if err := decodeInto(resp, &result); err != nil {
		return 0, err
	}
	c.invalidate(cache.BulkProductsInvalidations(ids))
	return result.Updated, nil
}

func (c *Catalog) DeleteProducts(ctx context.Context, ids []string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/products", map[string]any{"ids": ids})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	resp.Body.Close()
	c.invalidate(cache.BulkProductsInvalidations(ids))
	return nil
}
