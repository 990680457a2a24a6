package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gramseva/gramseva-backend/internal/models"
	"github.com/gramseva/gramseva-backend/internal/services"
)

func Signup(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewUser
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		user, token, err := a.Signup(c.Request.Context(), input)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}

		res := models.UserResponse(user, "User registered successfully")
		res.Token = token
		c.JSON(http.StatusCreated, res)
	}
}

func Login(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Email and password are required"))
			return
		}

		user, token, err := a.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}

		res := models.UserResponse(user, "Login successful")
		res.Token = token
		c.JSON(http.StatusOK, res)
	}
}
