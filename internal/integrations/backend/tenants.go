package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ValidateTenant проверяет, что тенант существует.
// 404 - тенант невалиден, это не ошибка и не логируется как ошибка.
func (c *Client) ValidateTenant(ctx context.Context, tenantID string) (bool, error) {
	if tenantID == "" {
		return false, nil
	}

	env, err := c.do(ctx, call{
		operation: "validate_tenant",
		method:    http.MethodGet,
		path:      fmt.Sprintf("/api/clients/%s", url.PathEscape(tenantID)),
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.log.Debug("ValidateTenant: tenant=%s not found", tenantID)
			return false, nil
		}
		c.log.Error("ValidateTenant: failed to validate tenant=%s: %v", tenantID, err)
		return false, err
	}

	return env.Success, nil
}
