package product

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	productEntity "woocommerce.GO/model/entity/product"
	"woocommerce.GO/model/query"
)

// QueryOptions describes wc_products to the query executor.
var QueryOptions = query.Options{
	SearchColumns: []string{"name", "sku", "description", "short_description"},
	OrderColumns: map[string]string{
		"date":       "created_at",
		"modified":   "updated_at",
		"name":       "name",
		"slug":       "slug",
		"menu_order": "menu_order",
		"price":      "price",
		"sales":      "total_sales",
		"rating":     "average_rating",
		"id":         "id",
	},
	HasStatus: true,
	HasParent: true,
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindByID(id uint) (*productEntity.Product, error) {
	var p productEntity.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs loads products keyed by id. Missing ids are absent from the map.
func (r *ProductRepository) FindByIDs(ids []uint) (map[uint]*productEntity.Product, error) {
	out := make(map[uint]*productEntity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []productEntity.Product
	if err := r.db.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	return out, nil
}

// IDBySlug returns 0 when no product has the slug.
func (r *ProductRepository) IDBySlug(slug string) (uint, error) {
	return r.idWhere("slug = ?", slug)
}

// IDBySKU returns 0 when no product has the sku.
func (r *ProductRepository) IDBySKU(sku string) (uint, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return 0, nil
	}
	return r.idWhere("sku = ?", sku)
}

func (r *ProductRepository) idWhere(cond string, v interface{}) (uint, error) {
	var p productEntity.Product
	err := r.db.Select("id").Where(cond, v).Order("id").Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Exists reports whether id is a product row.
func (r *ProductRepository) Exists(id uint) (bool, error) {
	var n int64
	err := r.db.Model(&productEntity.Product{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *ProductRepository) QueryIDs(args query.Args) ([]uint, error) {
	return query.Execute(r.db, &productEntity.Product{}, args, QueryOptions)
}

// ChildIDs returns the variations or grouped children of parentID.
func (r *ProductRepository) ChildIDs(parentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&productEntity.Product{}).
		Where("parent_id = ?", parentID).
		Order("menu_order, id").
		Pluck("id", &ids).Error
	return ids, err
}

// Upsert inserts p or updates the row with the same sku.
func (r *ProductRepository) Upsert(p *productEntity.Product) error {
	var existing productEntity.Product
	err := r.db.Select("id").Where("sku = ?", p.SKU).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(p).Error
	case err != nil:
		return err
	}
	p.ID = existing.ID
	return r.db.Model(&productEntity.Product{}).Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").Updates(p).Error
}
