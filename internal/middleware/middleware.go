package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gramseva/gramseva-backend/internal/helpers"
	"github.com/gramseva/gramseva-backend/internal/models"
	"github.com/gramseva/gramseva-backend/internal/services"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// Authenticate resolves the caller's identity and attaches the matching user
// to the context. Identity is taken, in order, from a bearer token, the
// user-id header, or a userId/currentUserId body field. Every failure is
// reported as 401; the gate never surfaces internal errors as 500s.
func Authenticate(userService *services.UserService, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := resolveCallerID(c, secret)
		if callerID == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			c.Abort()
			return
		}

		user, err := userService.GetByID(c.Request.Context(), callerID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("User not found"))
			} else {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication failed"))
			}
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireAdmin restricts a route to callers whose resolved role is admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("Admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by the Authenticate gate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// resolveCallerID tries each accepted identity source in fixed priority
// order and returns the first hit, or "" when none is present.
func resolveCallerID(c *gin.Context, secret []byte) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		if claims, err := helpers.ParseToken(secret, strings.TrimPrefix(auth, "Bearer ")); err == nil {
			return claims.Subject
		}
	}
	if id := c.GetHeader("user-id"); id != "" {
		return id
	}
	return bodyCallerID(c)
}

// bodyCallerID peeks at the JSON body for a userId or currentUserId field,
// restoring the body so handlers can still bind it.
func bodyCallerID(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var body struct {
		UserID        string `json:"userId"`
		CurrentUserID string `json:"currentUserId"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.UserID != "" {
		return body.UserID
	}
	return body.CurrentUserID
}
