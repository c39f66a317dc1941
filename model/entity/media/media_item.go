package media

import "time"

// Sizes maps a registered image size to its bounding box. Zero height keeps
// the aspect ratio.
var Sizes = map[string][2]int{
	"thumbnail":    {150, 150},
	"medium":       {300, 0},
	"medium_large": {768, 0},
	"large":        {1024, 0},
}

// MediaItem represents the wc_media table. File is relative to MEDIA_DIR.
type MediaItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255)" json:"title"`
	AltText   string    `gorm:"column:alt_text;type:varchar(255)" json:"alt_text"`
	MimeType  string    `gorm:"column:mime_type;type:varchar(100);not null;default:'image/jpeg'" json:"mime_type"`
	File      string    `gorm:"column:file;type:varchar(500);not null" json:"file"`
	Width     int       `gorm:"column:width;not null;default:0" json:"width"`
	Height    int       `gorm:"column:height;not null;default:0" json:"height"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MediaItem) TableName() string {
	return "wc_media"
}
