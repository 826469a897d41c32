package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomasbagu/POSapp/entity"
	"github.com/tomasbagu/POSapp/repository"
)

// fakeStorage records calls so tests can check what reached the object
// store.
type fakeStorage struct {
	uploads map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(path string, data []byte) error {
	f.uploads[path] = data
	return nil
}

func (f *fakeStorage) PublicURL(path string) string {
	return "http://test.local/uploads/" + path
}

func (f *fakeStorage) Delete(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func newDishService(t *testing.T) (*DishService, *fakeStorage) {
	t.Helper()
	storage := newFakeStorage()
	return NewDishService(repository.NewDishRepository(newTestDB(t)), storage), storage
}

func TestDishCreateValidatesCategory(t *testing.T) {
	svc, _ := newDishService(t)

	err := svc.Create(&entity.Dish{Name: "Sopa", Price: decimal.NewFromInt(5), Category: "soup"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestDishCreateRejectsNegativePrice(t *testing.T) {
	svc, _ := newDishService(t)

	err := svc.Create(&entity.Dish{Name: "Tacos", Price: decimal.NewFromInt(-1), Category: entity.CategoryMain})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestDishCRUD(t *testing.T) {
	svc, _ := newDishService(t)

	d := entity.Dish{Name: "Tacos", Price: decimal.NewFromFloat(9.5), Description: "Con todo", Category: entity.CategoryMain}
	require.NoError(t, svc.Create(&d))
	require.NotZero(t, d.ID)

	name := "Tacos al pastor"
	require.NoError(t, svc.Update(d.ID, &DishUpdate{Name: &name}))

	got, err := svc.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tacos al pastor", got.Name)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(9.5)))

	require.NoError(t, svc.Delete(d.ID))
	_, err = svc.Get(d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDishUpdateMissing(t *testing.T) {
	svc, _ := newDishService(t)

	name := "Nada"
	assert.ErrorIs(t, svc.Update(99, &DishUpdate{Name: &name}), ErrNotFound)
}

func TestDeleteDishWithImageRemovesObject(t *testing.T) {
	svc, storage := newDishService(t)

	d := entity.Dish{
		Name:      "Flan",
		Price:     decimal.NewFromInt(4),
		Category:  entity.CategoryDessert,
		ImageURL:  "http://test.local/uploads/dishes/1-abc.jpg",
		ImagePath: "dishes/1-abc.jpg",
	}
	require.NoError(t, svc.Create(&d))

	require.NoError(t, svc.Delete(d.ID))

	assert.Equal(t, []string{"dishes/1-abc.jpg"}, storage.deleted)
	_, err := svc.Get(d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDishWithoutImageSkipsStorage(t *testing.T) {
	svc, storage := newDishService(t)

	d := entity.Dish{Name: "Agua", Price: decimal.NewFromInt(2), Category: entity.CategoryDrink}
	require.NoError(t, svc.Create(&d))

	require.NoError(t, svc.Delete(d.ID))

	assert.Empty(t, storage.deleted, "no storage call without an image path")
}

func TestUploadImageGeneratesDishPath(t *testing.T) {
	svc, storage := newDishService(t)

	url, path, err := svc.UploadImage([]byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "dishes/"), "path %q", path)
	assert.True(t, strings.HasSuffix(path, ".jpg"), "path %q", path)
	assert.Equal(t, "http://test.local/uploads/"+path, url)
	assert.Equal(t, []byte("jpeg-bytes"), storage.uploads[path])
}
