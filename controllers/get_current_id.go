package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id set by the auth middleware.
// JWT claims decode numbers as float64, so normalize whatever shows up.
func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id not in context")
	}
	switch id := v.(type) {
	case uint:
		return id, nil
	case int:
		return uint(id), nil
	case int64:
		return uint(id), nil
	case float64:
		return uint(id), nil
	case string:
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return 0, errors.New("user_id not valid")
		}
		return uint(n), nil
	default:
		return 0, errors.New("user_id not valid")
	}
}
