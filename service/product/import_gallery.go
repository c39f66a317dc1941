package product

import (
	"fmt"
	"mime"
	"path/filepath"

	"github.com/disintegration/imaging"
	"gorm.io/gorm"

	mediaEntity "woocommerce.GO/model/entity/media"
)

var galleryColumns = map[string]bool{
	"image": true, "image_alt": true,
}

// flushGallery creates a media item for every image cell and points the
// record's image_id at it. Paths are relative to mediaDir; a file shared by
// several rows is stored once.
func flushGallery(db *gorm.DB, records []*record, mediaDir string) (int, []string, error) {
	var warnings []string
	byFile := make(map[string]uint)
	created := 0
	for _, rec := range records {
		file, ok := rec.cells["image"]
		alt := rec.cells["image_alt"]
		delete(rec.cells, "image")
		delete(rec.cells, "image_alt")
		if !ok {
			continue
		}
		if mediaDir == "" {
			warnings = append(warnings, rec.warnf("image %q: no media directory configured", file))
			continue
		}
		file = filepath.ToSlash(filepath.Clean("/" + file))[1:]

		if id, seen := byFile[file]; seen {
			rec.cells["image_id"] = fmt.Sprint(id)
			continue
		}
		img, err := imaging.Open(filepath.Join(mediaDir, file))
		if err != nil {
			warnings = append(warnings, rec.warnf("image %q: %v", file, err))
			continue
		}
		mimeType := mime.TypeByExtension(filepath.Ext(file))
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		title := rec.cells["name"]
		if title == "" {
			title = rec.sku
		}
		item := mediaEntity.MediaItem{
			Title:    title,
			AltText:  alt,
			MimeType: mimeType,
			File:     file,
			Width:    img.Bounds().Dx(),
			Height:   img.Bounds().Dy(),
		}
		if err := db.Create(&item).Error; err != nil {
			return 0, nil, fmt.Errorf("create media %s: %w", file, err)
		}
		created++
		byFile[file] = item.ID
		rec.cells["image_id"] = fmt.Sprint(item.ID)
	}
	return created, warnings, nil
}
