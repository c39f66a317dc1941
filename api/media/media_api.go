// Package media serves product images at the registered sizes, resized on
// the fly.
package media

import (
	"bytes"
	"errors"
	"image"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"woocommerce.GO/api"
	mediaEntity "woocommerce.GO/model/entity/media"
	mediaRepo "woocommerce.GO/model/repository/media"
)

// SizeFull serves the stored file without resizing.
const SizeFull = "full"

const webpQuality = 80

func init() {
	api.RegisterRoute(RegisterMediaRoutes)
}

func RegisterMediaRoutes(e *echo.Echo, env *api.Env) {
	e.GET("/media/:id/:size", Handler(mediaRepo.NewMediaRepository(env.DB), env.Config.MediaDir))
}

// Handler renders GET /media/:id/:size from files under dir. WebP is returned
// when the client accepts it or asks for ?format=webp.
func Handler(repo *mediaRepo.MediaRepository, dir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || id == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid media id"})
		}
		size := c.Param("size")
		box, known := mediaEntity.Sizes[size]
		if !known && size != SizeFull {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown size " + size})
		}

		item, err := repo.FindByID(uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		path := filepath.Join(dir, filepath.Clean("/"+item.File))
		img, err := imaging.Open(path)
		if err != nil {
			log.Warn().Err(err).Uint64("media_id", id).Str("file", path).Msg("media file unreadable")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media file missing"})
		}
		if known {
			img = Resize(img, box)
		}

		var buf bytes.Buffer
		contentType := item.MimeType
		if wantsWebP(c.Request()) {
			if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
			contentType = "image/webp"
		} else {
			format, err := imaging.FormatFromFilename(item.File)
			if err != nil {
				format = imaging.JPEG
				contentType = "image/jpeg"
			}
			if err := imaging.Encode(&buf, img, format); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		c.Response().Header().Add("Vary", "Accept")
		return c.Blob(http.StatusOK, contentType, buf.Bytes())
	}
}

// Resize fits img into box. A zero height keeps the aspect ratio; a full box
// crops to fill it. Images are never enlarged.
func Resize(img image.Image, box [2]int) image.Image {
	w, h := box[0], box[1]
	b := img.Bounds()
	if h == 0 {
		if b.Dx() <= w {
			return img
		}
		return imaging.Resize(img, w, 0, imaging.Lanczos)
	}
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

func wantsWebP(r *http.Request) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.EqualFold(f, "webp")
	}
	return strings.Contains(r.Header.Get("Accept"), "image/webp")
}
