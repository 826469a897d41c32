package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tomasbagu/POSapp/pkg/resp"
	"github.com/tomasbagu/POSapp/services"
)

// taxRate matches the 19% charged on the payment and invoice screens.
var taxRate = decimal.NewFromFloat(0.19)

type PaymentController struct {
	Orders *services.OrderService
}

func NewPaymentController(orders *services.OrderService) *PaymentController {
	return &PaymentController{Orders: orders}
}

type paymentIn struct {
	Method string `json:"method" binding:"required,oneof=Cash Credit Debit"`
}

// POST /orders/:id/payment (cashier) — records the method and closes the
// order.
func (h *PaymentController) Confirm(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}

	var in paymentIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Orders.RecordPayment(id, in.Method)
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

// GET /orders/:id/invoice (cashier) — read-only view over the same order
// record after payment.
func (h *PaymentController) Invoice(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := h.Orders.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	subtotal := order.Subtotal()
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax)

	invoiceNo := strings.ToUpper(fmt.Sprintf("%06d", order.ID))
	if len(invoiceNo) > 6 {
		invoiceNo = invoiceNo[:6]
	}

	resp.OK(c, gin.H{
		"invoiceNo":     invoiceNo,
		"date":          order.CreatedAt,
		"tableNumber":   order.TableNumber,
		"items":         order.Items,
		"subtotal":      subtotal,
		"tax":           tax,
		"total":         total,
		"paymentMethod": order.PaymentMethod,
	})
}
