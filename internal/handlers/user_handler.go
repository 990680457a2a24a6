package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gramseva/gramseva-backend/internal/middleware"
	"github.com/gramseva/gramseva-backend/internal/models"
	"github.com/gramseva/gramseva-backend/internal/services"
)

func GetProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		user, err := u.GetByID(c.Request.Context(), caller.ID.Hex())
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.UserResponse(user, ""))
	}
}

func UpdateProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		var input models.UserUpdate
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		user, err := u.Update(c.Request.Context(), caller.ID.Hex(), input)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.UserResponse(user, "Profile updated successfully"))
	}
}

func DeleteProfile(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		if err := u.Delete(c.Request.Context(), caller.ID.Hex()); err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Account deleted successfully"))
	}
}

// ProfileAction is the POST compatibility surface for the profile routes: a
// single endpoint dispatching on the body's action field into the same
// service calls the verb routes use.
func ProfileAction(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		var req struct {
			Action string `json:"action"`
			models.UserUpdate
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		switch req.Action {
		case "get":
			user, err := u.GetByID(c.Request.Context(), caller.ID.Hex())
			if err != nil {
				respondError(c, err, "User not found")
				return
			}
			c.JSON(http.StatusOK, models.UserResponse(user, ""))

		case "update":
			user, err := u.Update(c.Request.Context(), caller.ID.Hex(), req.UserUpdate)
			if err != nil {
				respondError(c, err, "User not found")
				return
			}
			c.JSON(http.StatusOK, models.UserResponse(user, "Profile updated successfully"))

		case "delete":
			if err := u.Delete(c.Request.Context(), caller.ID.Hex()); err != nil {
				respondError(c, err, "User not found")
				return
			}
			c.JSON(http.StatusOK, models.MessageResponse("Account deleted successfully"))

		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid action. Use: get, update, or delete"))
		}
	}
}

func ListUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		users, pagination, err := u.List(c.Request.Context(), models.UserFilter{
			Role:   c.Query("role"),
			Search: c.Query("search"),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.UsersResponse(users, pagination))
	}
}

// UsersAction handles POST /users with an action field. getAll is the only
// recognized action.
func UsersAction(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Action string `json:"action"`
			Page   int    `json:"page"`
			Limit  int    `json:"limit"`
			Role   string `json:"role"`
			Search string `json:"search"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		if req.Action != "getAll" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid action. Use: getAll"))
			return
		}

		users, pagination, err := u.List(c.Request.Context(), models.UserFilter{
			Role:   req.Role,
			Search: req.Search,
			Page:   req.Page,
			Limit:  req.Limit,
		})
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.UsersResponse(users, pagination))
	}
}

func GetUserByID(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := u.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.UserResponse(user, ""))
	}
}

func UpdateUserByID(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UserUpdate
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		user, err := u.UpdateByID(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.UserResponse(user, "User updated successfully"))
	}
}

func DeleteUserByID(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		if err := u.DeleteByID(c.Request.Context(), c.Param("id"), caller.ID.Hex()); err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("User deleted successfully"))
	}
}

// UserAction handles POST /users/:id with an action field for the admin
// per-user operations.
func UserAction(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}
		targetID := c.Param("id")

		var req struct {
			Action string `json:"action"`
			models.UserUpdate
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		switch req.Action {
		case "getById":
			user, err := u.GetByID(c.Request.Context(), targetID)
			if err != nil {
				respondError(c, err, "User not found")
				return
			}
			c.JSON(http.StatusOK, models.UserResponse(user, ""))

		case "update":
			user, err := u.UpdateByID(c.Request.Context(), targetID, req.UserUpdate)
			if err != nil {
				respondError(c, err, "User not found")
				return
			}
			c.JSON(http.StatusOK, models.UserResponse(user, "User updated successfully"))

		case "delete":
			if err := u.DeleteByID(c.Request.Context(), targetID, caller.ID.Hex()); err != nil {
				respondError(c, err, "User not found")
				return
			}
			c.JSON(http.StatusOK, models.MessageResponse("User deleted successfully"))

		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid action. Use: getById, update, or delete"))
		}
	}
}

// AddUser handles POST /users/admin/add. add is the only recognized action.
func AddUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Action string `json:"action"`
			models.NewUser
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		if req.Action != "add" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid action. Use: add"))
			return
		}

		user, err := u.Add(c.Request.Context(), req.NewUser)
		if err != nil {
			respondError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusCreated, models.UserResponse(user, "User created successfully"))
	}
}
