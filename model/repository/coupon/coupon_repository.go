package coupon

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	couponEntity "woocommerce.GO/model/entity/coupon"
	"woocommerce.GO/model/query"
)

// QueryOptions describes wc_coupons to the query executor.
var QueryOptions = query.Options{
	SearchColumns: []string{"code", "description"},
	OrderColumns: map[string]string{
		"date":     "created_at",
		"modified": "updated_at",
		"code":     "code",
		"amount":   "amount",
		"id":       "id",
	},
	HasStatus: true,
	HasParent: true,
}

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// NormalizeCode lowercases and trims a coupon code.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (r *CouponRepository) FindByID(id uint) (*couponEntity.Coupon, error) {
	var c couponEntity.Coupon
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) FindByIDs(ids []uint) (map[uint]*couponEntity.Coupon, error) {
	out := make(map[uint]*couponEntity.Coupon, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []couponEntity.Coupon
	if err := r.db.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	return out, nil
}

func (r *CouponRepository) FindByCode(code string) (*couponEntity.Coupon, error) {
	var c couponEntity.Coupon
	if err := r.db.Where("code = ?", NormalizeCode(code)).Take(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// IDByCode returns the id of the published coupon with code, or 0.
func (r *CouponRepository) IDByCode(code string) (uint, error) {
	code = NormalizeCode(code)
	if code == "" {
		return 0, nil
	}
	var c couponEntity.Coupon
	err := r.db.Select("id").Where("code = ? AND status = ?", code, "publish").Order("id DESC").Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *CouponRepository) QueryIDs(args query.Args) ([]uint, error) {
	return query.Execute(r.db, &couponEntity.Coupon{}, args, QueryOptions)
}

func (r *CouponRepository) Create(c *couponEntity.Coupon) error {
	c.Code = NormalizeCode(c.Code)
	return r.db.Create(c).Error
}
