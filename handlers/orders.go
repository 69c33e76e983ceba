package handlers

import (
	goerrors "errors"
	"io"
	"strconv"

	"storefront/errors"
	"storefront/formats"
	"storefront/models"
	"storefront/store"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Orders handles GET /api/orders
func Orders(c *fiber.Ctx) error {
	ctx := GetContext(c)

	orders, err := ctx.Store.ListOrders(c.UserContext(), 1000)
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to list orders", err.Error())
	}
	return c.JSON(orders)
}

// Order handles GET /api/orders/:id
func Order(c *fiber.Ctx) error {
	ctx := GetContext(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeInvalidParameter, "order id must be an integer")
	}

	order, err := ctx.Store.GetOrder(c.UserContext(), id)
	if goerrors.Is(err, store.ErrNotFound) {
		return errors.NotFound(c, errors.ErrorCodeOrderNotFound, "order not found")
	}
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to get order", err.Error())
	}
	return c.JSON(order)
}

// PostOrder handles POST /api/orders
func PostOrder(c *fiber.Ctx) error {
	_ = GetContext(c)

	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.BadRequestWithDetails(c, errors.ErrorCodeInvalidRequestBody, "invalid order body", err.Error())
	}
	if req.CustomerID == 0 {
		return errors.BadRequest(c, errors.ErrorCodeMissingParameter, "missing customer_id")
	}

	return createOrder(c, &req)
}

// PostOrderBulk handles POST /api/orders/csv: a multipart upload of order
// lines in csv, jsoneachrow, or msgpack format (?format=, csv default)
func PostOrderBulk(c *fiber.Ctx) error {
	customerID, err := strconv.Atoi(c.FormValue("customer"))
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeMissingParameter, "missing or invalid customer field")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeMissingParameter, "missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeInternalError, "failed to open upload", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeInternalError, "failed to read upload", err.Error())
	}

	parser, err := formats.GetParser(c.Query("format"))
	if err != nil {
		return errors.BadRequest(c, errors.ErrorCodeInvalidFormat, "unsupported format")
	}

	lines, err := parser.Parse(data)
	if err != nil {
		return errors.BadRequestWithDetails(c, errors.ErrorCodeParseError, "failed to parse order lines", err.Error())
	}

	return createOrder(c, &models.OrderRequest{CustomerID: customerID, Lines: lines})
}

func createOrder(c *fiber.Ctx, req *models.OrderRequest) error {
	ctx := GetContext(c)

	result, err := ctx.Store.CreateOrder(c.UserContext(), req)
	if goerrors.Is(err, store.ErrNotFound) {
		return errors.NotFound(c, errors.ErrorCodeCustomerNotFound, "customer or product not found")
	}
	if err != nil {
		return errors.InternalErrorWithDetails(c, errors.ErrorCodeDatabaseError, "failed to create order", err.Error())
	}

	// The original system tags the transaction with the totals and the
	// customer identity; mirrored here as span attributes.
	span := trace.SpanFromContext(c.UserContext())
	span.SetAttributes(
		attribute.Int("order.lines_count", result.LinesCount),
		attribute.Float64("order.total_amount", float64(result.TotalAmount)/100.0),
		attribute.String("customer.name", result.Customer.FullName),
		attribute.String("customer.email", result.Customer.Email),
	)

	return c.JSON(fiber.Map{"id": result.OrderID})
}
