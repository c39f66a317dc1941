package order

import (
	"errors"

	"gorm.io/gorm"

	orderEntity "woocommerce.GO/model/entity/order"
	"woocommerce.GO/model/query"
)

// QueryOptions describes wc_orders to the query executor.
var QueryOptions = query.Options{
	SearchColumns: []string{"order_key", "customer_note", "payment_method_title"},
	OrderColumns: map[string]string{
		"date":     "created_at",
		"modified": "updated_at",
		"total":    "total",
		"id":       "id",
	},
	HasStatus: true,
	HasParent: true,
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(id uint) (*orderEntity.Order, error) {
	var o orderEntity.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByIDs(ids []uint) (map[uint]*orderEntity.Order, error) {
	out := make(map[uint]*orderEntity.Order, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []orderEntity.Order
	if err := r.db.Preload("Items").Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	return out, nil
}

// IDByOrderKey returns 0 when no order has key.
func (r *OrderRepository) IDByOrderKey(key string) (uint, error) {
	var o orderEntity.Order
	err := r.db.Select("id").Where("order_key = ?", key).Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (r *OrderRepository) QueryIDs(args query.Args) ([]uint, error) {
	return query.Execute(r.db, &orderEntity.Order{}, args, QueryOptions)
}

func (r *OrderRepository) Create(o *orderEntity.Order) error {
	return r.db.Create(o).Error
}
