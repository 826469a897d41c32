package services

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrNegativePrice   = errors.New("price must not be negative")
)

// DishService is the cashier-facing catalog: CRUD over dishes plus image
// upload to object storage.
type DishService struct {
	Repo    *repository.DishRepository
	Storage ObjectStorage
}

func NewDishService(repo *repository.DishRepository, storage ObjectStorage) *DishService {
	return &DishService{Repo: repo, Storage: storage}
}

func (s *DishService) List() ([]entity.Dish, error) {
	return s.Repo.FindAll()
}

func (s *DishService) Get(id uint) (*entity.Dish, error) {
	d, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return d, err
}

func (s *DishService) Create(d *entity.Dish) error {
	if !d.Category.Valid() {
		return ErrInvalidCategory
	}
	if d.Price.LessThan(decimal.Zero) {
		return ErrNegativePrice
	}
	return s.Repo.Create(d)
}

type DishUpdate struct {
	Name        *string              `json:"name"`
	Price       *decimal.Decimal     `json:"price"`
	Description *string              `json:"description"`
	Category    *entity.DishCategory `json:"category"`
	ImageURL    *string              `json:"imageUrl"`
	ImagePath   *string              `json:"imagePath"`
}

func (s *DishService) Update(id uint, in *DishUpdate) error {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return ErrNegativePrice
		}
		updates["price"] = *in.Price
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Category != nil {
		if !in.Category.Valid() {
			return ErrInvalidCategory
		}
		updates["category"] = *in.Category
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.ImagePath != nil {
		updates["image_path"] = *in.ImagePath
	}
	if len(updates) == 0 {
		return nil
	}

	affected, err := s.Repo.Update(id, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the dish and, when it carries an image, the stored object.
// A storage failure is logged and does not keep the dish around.
func (s *DishService) Delete(id uint) error {
	d, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if d.ImagePath != "" {
		if err := s.Storage.Delete(d.ImagePath); err != nil {
			log.Printf("delete dish image %q: %v", d.ImagePath, err)
		}
	}

	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UploadImage stores the image bytes under a generated path and returns the
// public URL together with the storage path kept for later deletion.
func (s *DishService) UploadImage(data []byte) (imageURL, imagePath string, err error) {
	path := DishImagePath()
	if err := s.Storage.Upload(path, data); err != nil {
		return "", "", err
	}
	return s.Storage.PublicURL(path), path, nil
}
