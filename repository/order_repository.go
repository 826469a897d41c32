package repository

import (
	"github.com/tomasbagu/POSapp/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindAll returns every order, oldest first, matching the dashboards that
// render the full board ordered by creation time.
func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) FindByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("status = ?", status).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) FindByUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&out).Error
	return out, err
}

// UpdateStatusGuard writes the new status together with the timestamp map
// in a single update, guarded on the status the caller's check saw. Rows
// affected 0 means the order is gone or another writer moved it first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to entity.OrderStatus, stamps entity.StatusTimes) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Select("Status", "Timestamps").
		Updates(&entity.Order{Status: to, Timestamps: stamps})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdatePaymentMethod(tx *gorm.DB, id uint, method string) (int64, error) {
	res := tx.Model(&entity.Order{}).Where("id = ?", id).
		Update("payment_method", method)
	return res.RowsAffected, res.Error
}
