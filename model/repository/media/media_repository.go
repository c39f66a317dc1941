package media

import (
	"gorm.io/gorm"

	mediaEntity "woocommerce.GO/model/entity/media"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) FindByID(id uint) (*mediaEntity.MediaItem, error) {
	var m mediaEntity.MediaItem
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) Create(m *mediaEntity.MediaItem) error {
	return r.db.Create(m).Error
}
