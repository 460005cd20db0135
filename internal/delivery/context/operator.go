package context

import (
	"shiptrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyOperator is the key for storing the authenticated operator in echo.Context.
const KeyOperator ContextKey = "operator"

// SetOperator stores the authenticated operator in echo.Context.
func SetOperator(c echo.Context, op *entity.Operator) {
	c.Set(string(KeyOperator), op)
}

// GetOperator returns the authenticated operator, or nil on public routes.
func GetOperator(c echo.Context) *entity.Operator {
	if op, ok := c.Get(string(KeyOperator)).(*entity.Operator); ok {
		return op
	}

	return nil
}
