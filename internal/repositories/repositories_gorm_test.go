package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vastra/internal/models"
	"vastra/internal/repositories"
)

// openTestDB opens a named in-memory SQLite database so each test
// gets its own isolated store.
func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Measurement{},
		&models.Product{},
		&models.Avatar{},
		&models.TryOnHistory{},
		&models.TailorService{},
		&models.WishlistItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, gender string, price int, featured bool, createdAt time.Time) models.Product {
	t.Helper()
	product := models.Product{
		Name:         name,
		Description:  "seeded",
		Category:     "shirts",
		Gender:       gender,
		Type:         "casual",
		Brand:        "Vastra",
		Price:        price,
		Sizes:        []string{"S", "M"},
		Colors:       []models.Color{{Name: "White", Code: "#FFFFFF"}},
		MainImageURL: "http://img.example/main.jpg",
		IsFeatured:   featured,
		CreatedAt:    createdAt,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product %s: %v", name, err)
	}
	return product
}

func TestProductList_NoFilterReturnsAllNewestFirst(t *testing.T) {
	db := openTestDB(t, "products_all")
	repo := repositories.NewGORMProductRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, db, "oldest", "male", 100000, false, base)
	seedProduct(t, db, "middle", "female", 200000, false, base.Add(time.Hour))
	seedProduct(t, db, "newest", "female", 300000, true, base.Add(2*time.Hour))

	products, err := repo.List(repositories.ProductFilter{})
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, "newest", products[0].Name)
	assert.Equal(t, "middle", products[1].Name)
	assert.Equal(t, "oldest", products[2].Name)
}

func TestProductList_FiltersCombineWithAnd(t *testing.T) {
	db := openTestDB(t, "products_filtered")
	repo := repositories.NewGORMProductRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, db, "cheap-female", "female", 150000, false, base)
	seedProduct(t, db, "match-older", "female", 250000, false, base.Add(time.Hour))
	seedProduct(t, db, "match-newer", "female", 400000, true, base.Add(2*time.Hour))
	seedProduct(t, db, "male-in-range", "male", 300000, false, base.Add(3*time.Hour))
	seedProduct(t, db, "too-expensive", "female", 600000, false, base.Add(4*time.Hour))

	minPrice, maxPrice := 200000, 500000
	products, err := repo.List(repositories.ProductFilter{
		Gender:   "female",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "match-newer", products[0].Name)
	assert.Equal(t, "match-older", products[1].Name)

	// price bounds are inclusive
	exact := 150000
	products, err = repo.List(repositories.ProductFilter{MinPrice: &exact, MaxPrice: &exact})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "cheap-female", products[0].Name)
}

func TestProductList_FeaturedFilter(t *testing.T) {
	db := openTestDB(t, "products_featured")
	repo := repositories.NewGORMProductRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, db, "plain", "male", 100000, false, base)
	seedProduct(t, db, "promoted", "male", 100000, true, base.Add(time.Hour))

	featured := true
	products, err := repo.List(repositories.ProductFilter{Featured: &featured})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "promoted", products[0].Name)

	notFeatured := false
	products, err = repo.List(repositories.ProductFilter{Featured: &notFeatured})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "plain", products[0].Name)
}

func TestProductGetByID_NotFound(t *testing.T) {
	db := openTestDB(t, "products_missing")
	repo := repositories.NewGORMProductRepository(db)

	product, err := repo.GetByID(12345)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func seedTailorService(t *testing.T, db *gorm.DB, name, city string, ratePerHour int, rating float64, verified bool) models.TailorService {
	t.Helper()
	service := models.TailorService{
		UserID:      1,
		ServiceName: name,
		Description: "seeded",
		ServiceType: "alterations",
		RatePerHour: ratePerHour,
		City:        &city,
		Rating:      rating,
		IsVerified:  verified,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("failed to seed tailor service %s: %v", name, err)
	}
	return service
}

func TestTailorServiceList_FilterAndRatingOrder(t *testing.T) {
	db := openTestDB(t, "tailors")
	repo := repositories.NewGORMTailorServiceRepository(db)

	seedTailorService(t, db, "budget", "Mumbai", 300, 3.5, false)
	seedTailorService(t, db, "premium", "Mumbai", 900, 4.8, true)
	seedTailorService(t, db, "midrange", "Mumbai", 500, 4.1, true)
	seedTailorService(t, db, "elsewhere", "Delhi", 400, 5.0, true)

	services, err := repo.List(repositories.TailorServiceFilter{City: "Mumbai"})
	assert.NoError(t, err)
	assert.Len(t, services, 3)
	assert.Equal(t, "premium", services[0].ServiceName)
	assert.Equal(t, "midrange", services[1].ServiceName)
	assert.Equal(t, "budget", services[2].ServiceName)

	maxRate := 600
	verified := true
	services, err = repo.List(repositories.TailorServiceFilter{
		City:           "Mumbai",
		MaxRatePerHour: &maxRate,
		IsVerified:     &verified,
	})
	assert.NoError(t, err)
	assert.Len(t, services, 1)
	assert.Equal(t, "midrange", services[0].ServiceName)
}

func TestWishlist_UniquePairAndSilentDelete(t *testing.T) {
	db := openTestDB(t, "wishlist")
	repo := repositories.NewGORMWishlistRepository(db)

	item := models.WishlistItem{UserID: 1, ProductID: 7}
	assert.NoError(t, repo.Create(&item))

	duplicate := models.WishlistItem{UserID: 1, ProductID: 7}
	assert.ErrorIs(t, repo.Create(&duplicate), repositories.ErrDuplicate)

	// same product for another user is fine
	other := models.WishlistItem{UserID: 2, ProductID: 7}
	assert.NoError(t, repo.Create(&other))

	found, err := repo.Find(1, 7)
	assert.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	// deleting an absent pair is a no-op
	assert.NoError(t, repo.Delete(1, 999))

	assert.NoError(t, repo.Delete(1, 7))
	_, err = repo.Find(1, 7)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := openTestDB(t, "users_unique")
	repo := repositories.NewGORMUserRepository(db)

	user := models.User{Username: "asha", Password: "x", Email: "asha@example.com", FullName: "Asha", UserType: "buyer"}
	assert.NoError(t, repo.Create(&user))

	clash := models.User{Username: "asha", Password: "x", Email: "other@example.com", FullName: "Other", UserType: "buyer"}
	assert.ErrorIs(t, repo.Create(&clash), repositories.ErrDuplicate)
}
