package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"catalog-service/internal/entity"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct creates a new product --> POST /api/products/create-product
func (ph *ProductHandler) CreateProduct(c echo.Context) error {
	var req entity.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequestResponse(c, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return badRequestResponse(c, validationMessages(err)...)
	}

	product := &entity.Product{Name: req.Name, Description: req.Description}
	created, err := ph.productService.CreateProduct(c.Request().Context(), product)
	if err != nil {
		return fatalErrorResponse(c)
	}

	return createdResponse(c, created)
}

// CreateProductsBulk creates many products in one transaction
// --> POST /api/products/create-products-bulk
func (ph *ProductHandler) CreateProductsBulk(c echo.Context) error {
	var reqs []entity.CreateProductRequest
	if err := c.Bind(&reqs); err != nil {
		return badRequestResponse(c, "Request body must be an array of products")
	}
	if len(reqs) == 0 {
		return badRequestResponse(c, "Request body must be a non-empty array of products")
	}
	for _, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return badRequestResponse(c, validationMessages(err)...)
		}
	}

	products := make([]*entity.Product, len(reqs))
	for i, req := range reqs {
		products[i] = &entity.Product{Name: req.Name, Description: req.Description}
	}

	created, err := ph.productService.CreateProducts(c.Request().Context(), products)
	if err != nil {
		return fatalErrorResponse(c)
	}

	return createdResponse(c, created)
}

// ListAllProducts lists every product --> GET /api/products/list-all-products
func (ph *ProductHandler) ListAllProducts(c echo.Context) error {
	products, err := ph.productService.GetProducts(c.Request().Context())
	if err != nil {
		return fatalErrorResponse(c)
	}

	return okResponse(c, products)
}

// ListProductByID lists a single product --> GET /api/products/list-product-by-id
func (ph *ProductHandler) ListProductByID(c echo.Context) error {
	id, msg := intQueryParam(c, "id")
	if msg != "" {
		return badRequestResponse(c, msg)
	}

	product, err := ph.productService.GetProductByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundResponse(c, fmt.Sprintf("Product with 'id' %d does not exist", id))
		}
		return fatalErrorResponse(c)
	}

	return okResponse(c, product)
}

// ListProductsByFilters lists products matching the query-string filters
// --> GET /api/products/list-products-by-filters
func (ph *ProductHandler) ListProductsByFilters(c echo.Context) error {
	filter, errs := parseProductFilter(c)
	if len(errs) > 0 {
		return badRequestResponse(c, errs...)
	}

	products, err := ph.productService.ListProductsByFilters(c.Request().Context(), filter)
	if err != nil {
		return fatalErrorResponse(c)
	}

	return okResponse(c, products)
}

// DeleteProductByID deletes a product --> DELETE /api/products/delete-product-by-id
func (ph *ProductHandler) DeleteProductByID(c echo.Context) error {
	id, msg := intQueryParam(c, "id")
	if msg != "" {
		return badRequestResponse(c, msg)
	}

	if err := ph.productService.DeleteProductByID(c.Request().Context(), id); err != nil {
		return fatalErrorResponse(c)
	}

	return noContentResponse(c)
}

// DeleteProductsByIDBulk deletes a set of products
// --> DELETE /api/products/delete-products-by-id-bulk
func (ph *ProductHandler) DeleteProductsByIDBulk(c echo.Context) error {
	ids, errs := idsQueryParam(c)
	if len(errs) > 0 {
		return badRequestResponse(c, errs...)
	}

	if err := ph.productService.DeleteProductsByID(c.Request().Context(), ids); err != nil {
		return fatalErrorResponse(c)
	}

	return noContentResponse(c)
}

// parseProductFilter builds the filter specification from the query string,
// falling back to defaults for absent parameters and collecting a message
// for every invalid one.
func parseProductFilter(c echo.Context) (entity.ProductFilter, []string) {
	filter := entity.DefaultProductFilter()
	var errs []string

	filter.Name = c.QueryParam("name")
	filter.NameLike = c.QueryParam("nameLike")
	filter.DescriptionLike = c.QueryParam("descriptionLike")

	if v := c.QueryParam("orderBy"); v != "" {
		switch v {
		case entity.OrderByID, entity.OrderByName, entity.OrderByDescription:
			filter.OrderBy = v
		default:
			errs = append(errs, "Field 'orderBy' must be one of 'id', 'name', 'description'")
		}
	}
	if v := c.QueryParam("order"); v != "" {
		switch v {
		case entity.OrderAsc, entity.OrderDesc:
			filter.Order = v
		default:
			errs = append(errs, "Field 'order' must be 'asc' or 'desc'")
		}
	}
	if v := c.QueryParam("itemsPerPage"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > entity.MaxItemsPerPage {
			errs = append(errs, "Field 'itemsPerPage' must be an integer between 1 and 20")
		} else {
			filter.ItemsPerPage = n
		}
	}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, "Field 'page' must be a positive integer")
		} else {
			filter.Page = n
		}
	}

	return filter, errs
}

// intQueryParam reads a required integer query parameter, returning a
// client-facing message when it is missing or malformed.
func intQueryParam(c echo.Context, name string) (int, string) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, fmt.Sprintf("Field '%s' is required", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Sprintf("Field '%s' must be an integer", name)
	}
	return value, ""
}

// idsQueryParam reads the 'ids' parameter, accepting both repeated
// parameters (?ids=1&ids=2) and comma-separated lists (?ids=1,2).
func idsQueryParam(c echo.Context) ([]int, []string) {
	raw := c.QueryParams()["ids"]
	if len(raw) == 0 {
		return nil, []string{"Field 'ids' is required"}
	}

	var ids []int
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return nil, []string{"Field 'ids' must contain only integers"}
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, []string{"Field 'ids' is required"}
	}

	return ids, nil
}
