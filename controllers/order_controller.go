package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/pkg/resp"
	"github.com/tomasbagu/POSapp/services"
	"github.com/tomasbagu/POSapp/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

type submitIn struct {
	TableNumber string `json:"tableNumber"`
}

// POST /orders — materializes the caller's cart into a new order. The
// table number comes from the QR the diner scanned.
func (h *OrderController) Submit(c *gin.Context) {
	var in submitIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Submit(utils.CurrentUserID(c), utils.CurrentEmail(c), in.TableNumber)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, "cart is empty")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id — clients may only read their own orders; staff read any.
func (h *OrderController) Detail(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if utils.CurrentRole(c) == entity.RoleClient && order.UserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "not your order")
		return
	}
	resp.OK(c, order)
}

// GET /orders?status=... (chef, cashier)
func (h *OrderController) List(c *gin.Context) {
	var (
		orders []entity.Order
		err    error
	)
	if raw := c.Query("status"); raw != "" {
		status := entity.OrderStatus(raw)
		if !status.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		orders, err = h.Svc.ListByStatus(status)
	} else {
		orders, err = h.Svc.ListAll()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /profile/orders — the caller's own orders.
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type statusIn struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (chef, cashier)
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}

	var in statusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.SetStatus(id, in.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
