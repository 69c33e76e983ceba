package handlers

import (
	goerrors "errors"

	"storefront/errors"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
)

// Products handles GET /api/products
func Products(c *fiber.Ctx) error {
	ctx := GetContext(c)

	products, err := ctx.Store.ListProducts(c.UserContext())
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to list products", err.Error())
	}
	return c.JSON(products)
}

// TopProducts handles GET /api/products/top
func TopProducts(c *fiber.Ctx) error {
	ctx := GetContext(c)

	products, err := ctx.Store.TopProducts(c.UserContext())
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to query top products", err.Error())
	}
	return c.JSON(products)
}

// Product handles GET /api/products/:id
func Product(c *fiber.Ctx) error {
	ctx := GetContext(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeInvalidParameter, "product id must be an integer")
	}

	product, err := ctx.Store.GetProduct(c.UserContext(), id)
	if goerrors.Is(err, store.ErrNotFound) {
		return errors.NotFound(c, errors.ErrorCodeProductNotFound, "product not found")
	}
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to get product", err.Error())
	}
	return c.JSON(product)
}

// ProductCustomers handles GET /api/products/:id/customers
func ProductCustomers(c *fiber.Ctx) error {
	ctx := GetContext(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeInvalidParameter, "product id must be an integer")
	}

	// A malformed count falls back to the default rather than erroring
	limit := c.QueryInt("count", 1000)
	if limit <= 0 {
		limit = 1000
	}

	customers, err := ctx.Store.ProductCustomers(c.UserContext(), id, limit)
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to query product customers", err.Error())
	}
	return c.JSON(customers)
}

// SearchProducts handles GET /api/products/search
func SearchProducts(c *fiber.Ctx) error {
	ctx := GetContext(c)

	q := c.Query("q")
	if q == "" {
		return errors.BadRequest(c, errors.ErrorCodeMissingParameter, "missing query parameter q")
	}

	hits, err := ctx.Search.Search(q, c.QueryInt("limit", 20))
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeSearchFailed, "product search failed", err.Error())
	}
	return c.JSON(hits)
}

// ProductTypes handles GET /api/types
func ProductTypes(c *fiber.Ctx) error {
	ctx := GetContext(c)

	types, err := ctx.Store.ListProductTypes(c.UserContext())
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to list product types", err.Error())
	}
	return c.JSON(types)
}

// ProductType handles GET /api/types/:id
func ProductType(c *fiber.Ctx) error {
	ctx := GetContext(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeInvalidParameter, "type id must be an integer")
	}

	detail, err := ctx.Store.GetProductType(c.UserContext(), id)
	if goerrors.Is(err, store.ErrNotFound) {
		return errors.NotFound(c, errors.ErrorCodeProductTypeNotFound, "product type not found")
	}
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to get product type", err.Error())
	}
	return c.JSON(detail)
}
