package postgres

import (
	"fulfilment/internal/domain/product"
)

const productTable = "products"

var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo implements product.Repository on top of BaseRepo.
type ProductRepo struct {
	*BaseRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *TxManager) *ProductRepo {
	return &ProductRepo{
		BaseRepo: NewBaseRepo(
			txm,
			productTable,
			ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}
