package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tomasbagu/POSapp/pkg/resp"
	"github.com/tomasbagu/POSapp/services"
	"github.com/tomasbagu/POSapp/utils"
)

type CartController struct {
	Carts  *services.CartService
	Dishes *services.DishService
}

func NewCartController(carts *services.CartService, dishes *services.DishService) *CartController {
	return &CartController{Carts: carts, Dishes: dishes}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	resp.OK(c, gin.H{
		"items": h.Carts.Items(uid),
		"total": h.Carts.Total(uid),
	})
}

type addIn struct {
	DishID uint `json:"dishId" binding:"required"`
}

// POST /cart/items — adds one unit; repeated adds of the same dish merge
// into a single line.
func (h *CartController) Add(c *gin.Context) {
	var in addIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Dishes.Get(in.DishID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	uid := utils.CurrentUserID(c)
	h.Carts.Add(uid, *dish)
	resp.Created(c, gin.H{"items": h.Carts.Items(uid), "total": h.Carts.Total(uid)})
}

type qtyIn struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// PATCH /cart/items/:dishId — quantity 0 removes the line.
func (h *CartController) UpdateQuantity(c *gin.Context) {
	dishID, err := strconv.ParseUint(c.Param("dishId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var in qtyIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUserID(c)
	h.Carts.SetQuantity(uid, uint(dishID), *in.Quantity)
	resp.OK(c, gin.H{"items": h.Carts.Items(uid), "total": h.Carts.Total(uid)})
}

// DELETE /cart/items/:dishId
func (h *CartController) Remove(c *gin.Context) {
	dishID, err := strconv.ParseUint(c.Param("dishId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}
	uid := utils.CurrentUserID(c)
	h.Carts.Remove(uid, uint(dishID))
	resp.OK(c, gin.H{"items": h.Carts.Items(uid), "total": h.Carts.Total(uid)})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Carts.Clear(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"cleared": true})
}
