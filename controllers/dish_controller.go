package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/pkg/resp"
	"github.com/tomasbagu/POSapp/services"
)

type DishController struct {
	Svc *services.DishService
}

func NewDishController(svc *services.DishService) *DishController {
	return &DishController{Svc: svc}
}

// GET /dishes
func (h *DishController) List(c *gin.Context) {
	dishes, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /dishes/:id
func (h *DishController) Detail(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	d, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

type dishIn struct {
	Name        string              `json:"name" binding:"required"`
	Price       decimal.Decimal     `json:"price" binding:"required"`
	Description string              `json:"description"`
	Category    entity.DishCategory `json:"category" binding:"required"`
	ImageURL    string              `json:"imageUrl"`
	ImagePath   string              `json:"imagePath"`
}

// POST /dishes (cashier)
func (h *DishController) Create(c *gin.Context) {
	var in dishIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d := entity.Dish{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		ImagePath:   in.ImagePath,
	}
	if err := h.Svc.Create(&d); err != nil {
		if errors.Is(err, services.ErrInvalidCategory) || errors.Is(err, services.ErrNegativePrice) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /dishes/:id (cashier)
func (h *DishController) Update(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}

	var in services.DishUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(id, &in); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "dish not found")
		case errors.Is(err, services.ErrInvalidCategory), errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /dishes/:id (cashier)
func (h *DishController) Delete(c *gin.Context) {
	id := parseID(c)
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /dishes/image (cashier, multipart field "image") — uploads the file
// to object storage and returns the public URL plus the storage path the
// dish record keeps for later deletion.
func (h *DishController) UploadImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		resp.BadRequest(c, "cannot read image")
		return
	}
	if len(data) > 10*1024*1024 {
		resp.BadRequest(c, "file too large")
		return
	}

	imageURL, imagePath, err := h.Svc.UploadImage(data)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"imageUrl": imageURL, "imagePath": imagePath})
}

func parseID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
