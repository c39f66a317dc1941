package auth

import (
	"time"

	"gorm.io/gorm"

	entity "woocommerce.GO/model/entity"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindActiveToken returns a non-revoked, unexpired token by its token string.
func (r *AuthRepository) FindActiveToken(token string) (*entity.APIToken, error) {
	var t entity.APIToken
	err := r.db.Where("token = ? AND revoked = ? AND (expires_at IS NULL OR expires_at > ?)", token, false, time.Now()).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *AuthRepository) CreateToken(t *entity.APIToken) error {
	return r.db.Create(t).Error
}

// RevokeToken marks token as revoked.
func (r *AuthRepository) RevokeToken(token string) error {
	return r.db.Model(&entity.APIToken{}).Where("token = ?", token).Update("revoked", true).Error
}

// PruneTokens deletes revoked tokens and tokens that expired before now.
func (r *AuthRepository) PruneTokens(now time.Time) (int64, error) {
	res := r.db.Where("revoked = ? OR (expires_at IS NOT NULL AND expires_at <= ?)", true, now).
		Delete(&entity.APIToken{})
	return res.RowsAffected, res.Error
}
