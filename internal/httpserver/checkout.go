package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"garage-sale/internal/domain"
	"garage-sale/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	Products []checkoutItem `json:"products"`
}

// checkoutItem accepts the product id as either a JSON number or a numeric
// string; older clients sent strings.
type checkoutItem struct {
	ID       json.Number `json:"id"`
	Quantity int         `json:"quantity"`
}

func checkoutHandler(logger *log.Logger, svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		items := make([]checkout.Item, 0, len(req.Products))
		for _, p := range req.Products {
			id, err := p.ID.Int64()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id: " + p.ID.String()})
				return
			}
			items = append(items, checkout.Item{ProductID: id, Quantity: p.Quantity})
		}

		url, err := svc.Create(c.Request.Context(), items)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyCart),
				errors.Is(err, domain.ErrUnknownProduct),
				errors.Is(err, domain.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Printf("checkout handler: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
