package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-fieldsales/internal/catalog"
)

func staticSource() catalog.StaticSource {
	return catalog.StaticSource{
		RetailerRows: []catalog.Retailer{
			{Name: "Sharma General Store", Salesperson: "Ravi Kumar", Team: "North", Email: "ravi.kumar@fieldsales.in"},
			{Name: "Patel Provision", Salesperson: "Meena Joshi", Team: "West", Email: "meena.joshi@fieldsales.in"},
		},
		CategoryRows: []catalog.Category{
			{Name: "Snacks"},
			{Name: "Beverages"},
			{Name: "Seasonal"},
		},
		ProductRows: []catalog.Product{
			{ID: "p-chips", Name: "Masala Chips 50g", Category: "Snacks", Price: 2000},
			{ID: "p-peanuts", Name: "Salted Peanuts 100g", Category: "Snacks", Price: 3500},
			{ID: "p-cola", Name: "Cola 300ml", Category: "Beverages", Price: 1500},
		},
	}
}

func TestLoadBuildsLookups(t *testing.T) {
	snap, err := catalog.Load(context.Background(), staticSource())
	require.NoError(t, err)

	retailer, ok := snap.LookupRetailer("Sharma General Store")
	require.True(t, ok)
	require.Equal(t, "Ravi Kumar", retailer.Salesperson)
	require.Equal(t, "North", retailer.Team)
	require.Equal(t, "ravi.kumar@fieldsales.in", retailer.Email)

	product, ok := snap.Product("p-cola")
	require.True(t, ok)
	require.Equal(t, "Cola 300ml", product.Name)
	require.EqualValues(t, 1500, product.Price)

	_, ok = snap.LookupRetailer("Unknown Mart")
	require.False(t, ok)
	_, ok = snap.Product("p-missing")
	require.False(t, ok)
}

func TestLoadPreservesSourceOrder(t *testing.T) {
	snap, err := catalog.Load(context.Background(), staticSource())
	require.NoError(t, err)

	categories := snap.Categories()
	require.Len(t, categories, 3)
	require.Equal(t, "Snacks", categories[0].Name)
	require.Equal(t, "Beverages", categories[1].Name)

	products := snap.ProductsInCategory("Snacks")
	require.Len(t, products, 2)
	require.Equal(t, "Masala Chips 50g", products[0].Name)
	require.Equal(t, "Salted Peanuts 100g", products[1].Name)
}

func TestProductsInCategoryEmpty(t *testing.T) {
	snap, err := catalog.Load(context.Background(), staticSource())
	require.NoError(t, err)

	products := snap.ProductsInCategory("Seasonal")
	require.NotNil(t, products)
	require.Empty(t, products)
}

func TestLoadSourceFailure(t *testing.T) {
	src := staticSource()
	src.Err = errors.New("connection refused")

	snap, err := catalog.Load(context.Background(), src)
	require.Error(t, err)
	require.Nil(t, snap)
}

func TestLoadNilSource(t *testing.T) {
	snap, err := catalog.Load(context.Background(), nil)
	require.Error(t, err)
	require.Nil(t, snap)
}

func TestPGSourceWithoutPool(t *testing.T) {
	src := catalog.PGSource{}

	_, err := src.GetRetailers(context.Background())
	require.ErrorIs(t, err, catalog.ErrSourceUnavailable)
	_, err = src.GetCategories(context.Background())
	require.ErrorIs(t, err, catalog.ErrSourceUnavailable)
	_, err = src.GetProducts(context.Background())
	require.ErrorIs(t, err, catalog.ErrSourceUnavailable)
}
