package httpserver

import (
	"errors"
	"net/http"

	"garage-sale/internal/domain"
	"garage-sale/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	ImageURL       string  `json:"image_url"`
	AvailableCount int     `json:"available_count"`
}

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func createProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		created, err := svc.Insert(c.Request.Context(), domain.Product{
			Name:           req.Name,
			Description:    req.Description,
			Price:          req.Price,
			ImageURL:       req.ImageURL,
			AvailableCount: req.AvailableCount,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
