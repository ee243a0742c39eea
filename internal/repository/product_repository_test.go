package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/entity"
	"catalog-service/migrations"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// A second connection would see a different in-memory database.
	db.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrateProducts(db))
	require.NoError(t, migrations.AutoMigrateUsers(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string {
	return &s
}

func seedProducts(t *testing.T, repo *ProductRepository, products ...*entity.Product) {
	t.Helper()
	for _, product := range products {
		_, err := repo.CreateProduct(context.Background(), product)
		require.NoError(t, err)
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	created, err := repo.CreateProduct(context.Background(), &entity.Product{Name: "Milk", Description: strPtr("Fresh milk")})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Milk", created.Name)
}

func TestCreateProductRoundTrip(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	created, err := repo.CreateProduct(context.Background(), &entity.Product{Name: "Milk", Description: strPtr("Fresh milk")})
	require.NoError(t, err)

	fetched, err := repo.GetProductByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Milk", fetched.Name)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "Fresh milk", *fetched.Description)
}

func TestCreateProductNilDescriptionStoredAsNull(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	created, err := repo.CreateProduct(context.Background(), &entity.Product{Name: "Milk"})
	require.NoError(t, err)

	fetched, err := repo.GetProductByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Description)
}

func TestCreateProductsAssignsSequentialIDs(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	created, err := repo.CreateProducts(context.Background(), []*entity.Product{
		{Name: "Milk"},
		{Name: "Bread"},
		{Name: "Eggs"},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, 1, created[0].ID)
	assert.Equal(t, 2, created[1].ID)
	assert.Equal(t, 3, created[2].ID)

	all, err := repo.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetProductByIDNotFound(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	_, err := repo.GetProductByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsByFiltersDefaults(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	for i := 0; i < 12; i++ {
		seedProducts(t, repo, &entity.Product{Name: "Item"})
	}

	products, err := repo.ListProductsByFilters(context.Background(), entity.DefaultProductFilter())
	require.NoError(t, err)
	require.Len(t, products, entity.DefaultItemsPerPage)
	for i, product := range products {
		assert.Equal(t, i+1, product.ID)
	}
}

func TestListProductsByFiltersEmptyResultIsNotAnError(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))

	products, err := repo.ListProductsByFilters(context.Background(), entity.DefaultProductFilter())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProductsByFiltersNameLikeIsCaseInsensitive(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	seedProducts(t, repo,
		&entity.Product{Name: "Foo"},
		&entity.Product{Name: "FOO"},
		&entity.Product{Name: "bar"},
		&entity.Product{Name: "Wooden spoon"},
	)

	filter := entity.DefaultProductFilter()
	filter.NameLike = "oo"

	products, err := repo.ListProductsByFilters(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 3)
	names := []string{products[0].Name, products[1].Name, products[2].Name}
	assert.Equal(t, []string{"Foo", "FOO", "Wooden spoon"}, names)
}

func TestListProductsByFiltersExactNameIsCaseSensitive(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	seedProducts(t, repo,
		&entity.Product{Name: "Foo"},
		&entity.Product{Name: "foo"},
	)

	filter := entity.DefaultProductFilter()
	filter.Name = "Foo"

	products, err := repo.ListProductsByFilters(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Foo", products[0].Name)
}

func TestListProductsByFiltersDescriptionLike(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	seedProducts(t, repo,
		&entity.Product{Name: "Milk", Description: strPtr("Fresh DAIRY product")},
		&entity.Product{Name: "Bread", Description: strPtr("Baked daily")},
		&entity.Product{Name: "Soap"},
	)

	filter := entity.DefaultProductFilter()
	filter.DescriptionLike = "dairy"

	products, err := repo.ListProductsByFilters(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Milk", products[0].Name)
}

func TestListProductsByFiltersPagination(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	for i := 0; i < 5; i++ {
		seedProducts(t, repo, &entity.Product{Name: "Item"})
	}

	filter := entity.DefaultProductFilter()
	filter.ItemsPerPage = 2
	filter.Page = 2

	products, err := repo.ListProductsByFilters(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 3, products[0].ID)
	assert.Equal(t, 4, products[1].ID)
}

func TestListProductsByFiltersOrdering(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	seedProducts(t, repo,
		&entity.Product{Name: "Banana"},
		&entity.Product{Name: "Apple"},
		&entity.Product{Name: "Cherry"},
	)

	filter := entity.DefaultProductFilter()
	filter.OrderBy = entity.OrderByName
	filter.Order = entity.OrderDesc

	products, err := repo.ListProductsByFilters(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Cherry", products[0].Name)
	assert.Equal(t, "Banana", products[1].Name)
	assert.Equal(t, "Apple", products[2].Name)
}

func TestDeleteProductByIDIsIdempotent(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	seedProducts(t, repo, &entity.Product{Name: "Milk"})

	require.NoError(t, repo.DeleteProductByID(context.Background(), 1))
	// Deleting again, and deleting an id that never existed, both succeed.
	require.NoError(t, repo.DeleteProductByID(context.Background(), 1))
	require.NoError(t, repo.DeleteProductByID(context.Background(), 99))
}

func TestDeleteProductsByID(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	for i := 0; i < 4; i++ {
		seedProducts(t, repo, &entity.Product{Name: "Item"})
	}

	require.NoError(t, repo.DeleteProductsByID(context.Background(), []int{1, 3}))

	all, err := repo.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].ID)
	assert.Equal(t, 4, all[1].ID)
}
