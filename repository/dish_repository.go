package repository

import (
	"github.com/tomasbagu/POSapp/entity"
	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) FindAll() ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Update(id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *DishRepository) Delete(id uint) (int64, error) {
	res := r.DB.Unscoped().Delete(&entity.Dish{}, id)
	return res.RowsAffected, res.Error
}
