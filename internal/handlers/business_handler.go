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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateBusiness(b *services.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		var business models.Business
		if err := c.ShouldBindJSON(&business); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}
		business.ID = primitive.NilObjectID

		created, err := b.Create(c.Request.Context(), &business, caller)
		if err != nil {
			respondError(c, err, "Business not found")
			return
		}
		c.JSON(http.StatusCreated, models.ApiResponse{
			Success:  true,
			Message:  "Business created successfully",
			Business: created,
		})
	}
}

func ListBusinesses(b *services.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		businesses, pagination, err := b.List(c.Request.Context(), models.BusinessFilter{
			Sector: c.Query("sector"),
			Search: c.Query("search"),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			respondError(c, err, "Business not found")
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Success:    true,
			Businesses: businesses,
			Pagination: pagination,
		})
	}
}

func GetBusiness(b *services.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business, err := b.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Business not found")
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Success:  true,
			Business: business,
		})
	}
}

func UpdateBusiness(b *services.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		var input models.BusinessUpdate
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request payload"))
			return
		}

		business, err := b.Update(c.Request.Context(), c.Param("id"), input, caller)
		if err != nil {
			respondError(c, err, "Business not found")
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{
			Success:  true,
			Message:  "Business updated successfully",
			Business: business,
		})
	}
}

func DeleteBusiness(b *services.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		if err := b.Delete(c.Request.Context(), c.Param("id"), caller); err != nil {
			respondError(c, err, "Business not found")
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse("Business deleted successfully"))
	}
}
