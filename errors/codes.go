package errors

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorCode represents a typed error code for client libraries
type ErrorCode string

const (
	// Validation errors (400)
	ErrorCodeMissingParameter   ErrorCode = "MISSING_PARAMETER"
	ErrorCodeInvalidParameter   ErrorCode = "INVALID_PARAMETER"
	ErrorCodeInvalidRequestBody ErrorCode = "INVALID_REQUEST_BODY"
	ErrorCodeParseError         ErrorCode = "PARSE_ERROR"
	ErrorCodeInvalidFormat      ErrorCode = "INVALID_FORMAT"

	// Not found errors (404)
	ErrorCodeProductNotFound     ErrorCode = "PRODUCT_NOT_FOUND"
	ErrorCodeProductTypeNotFound ErrorCode = "PRODUCT_TYPE_NOT_FOUND"
	ErrorCodeCustomerNotFound    ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrorCodeOrderNotFound       ErrorCode = "ORDER_NOT_FOUND"

	// Forwarding errors (503)
	ErrorCodePeerUnavailable ErrorCode = "PEER_UNAVAILABLE"

	// Internal errors (500)
	ErrorCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrorCodeSearchFailed  ErrorCode = "SEARCH_FAILED"
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// PeerErrorResponse extends ErrorResponse with the peer that failed
type PeerErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Peer    string    `json:"peer,omitempty"`
}

// Error helper functions

func BadRequest(c *fiber.Ctx, code ErrorCode, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func BadRequestWithDetails(c *fiber.Ctx, code ErrorCode, message, details string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func NotFound(c *fiber.Ctx, code ErrorCode, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func ServiceUnavailable(c *fiber.Ctx, code ErrorCode, message, peer string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(PeerErrorResponse{
		Code:    code,
		Message: message,
		Peer:    peer,
	})
}

func InternalError(c *fiber.Ctx, code ErrorCode, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func InternalErrorWithDetails(c *fiber.Ctx, code ErrorCode, message, details string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}
