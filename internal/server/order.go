package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/taxsarthi/taxsarthi/internal/order/domain"
	"github.com/taxsarthi/taxsarthi/pkg/db/pagination"
)

func (s *Server) ListOrders(c *gin.Context) {
	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, newValidationError("page", "invalid_pagination", "invalid pagination parameters"))
		return
	}

	req := orderdomain.ListOrderRequest{Page: page}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		req.Filter.Status = orderdomain.OrderStatus(status)
	}
	if from := strings.TrimSpace(c.Query("created_from")); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			AbortWithError(c, newValidationError("created_from", "invalid_timestamp", "created_from must be RFC3339"))
			return
		}
		req.Filter.CreatedFrom = &parsed
	}
	if to := strings.TrimSpace(c.Query("created_to")); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			AbortWithError(c, newValidationError("created_to", "invalid_timestamp", "created_to must be RFC3339"))
			return
		}
		req.Filter.CreatedTo = &parsed
	}

	resp, err := s.orderSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      resp.Orders,
		"page_info": resp.PageInfo,
	})
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req orderdomain.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	order, err := s.orderSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": order})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	order, err := s.orderSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}

func (s *Server) MarkOrderPaid(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	order, err := s.orderSvc.MarkPaid(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}
