package handlers

import (
	goerrors "errors"

	"storefront/errors"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Customers handles GET /api/customers
func Customers(c *fiber.Ctx) error {
	ctx := GetContext(c)

	customers, err := ctx.Store.ListCustomers(c.UserContext())
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to list customers", err.Error())
	}
	return c.JSON(customers)
}

// Customer handles GET /api/customers/:id
func Customer(c *fiber.Ctx) error {
	ctx := GetContext(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeInvalidParameter, "customer id must be an integer")
	}

	customer, err := ctx.Store.GetCustomer(c.UserContext(), id)
	if goerrors.Is(err, store.ErrNotFound) {
		ctx.Logger.Warn("Customer not found", zap.Int("customer_id", id))
		return errors.NotFound(c, errors.ErrorCodeCustomerNotFound, "customer not found")
	}
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to get customer", err.Error())
	}
	return c.JSON(customer)
}
