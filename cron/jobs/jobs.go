// Package jobs registers the built-in maintenance jobs.
package jobs

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"woocommerce.GO/config"
	"woocommerce.GO/core/session"
	"woocommerce.GO/cron"
	authRepo "woocommerce.GO/model/repository/auth"
)

// Purger is a session store that can drop expired sessions itself.
type Purger interface {
	Purge() int
}

// Register adds sessiongc and tokenprune to the cron registry. sessiongc is
// only registered for stores that need manual expiry.
func Register(db *gorm.DB, store session.Store) {
	if p, ok := store.(Purger); ok {
		cron.Register("sessiongc", config.CronSchedule("sessiongc"), SessionGC(p))
	}
	if db != nil {
		cron.Register("tokenprune", config.CronSchedule("tokenprune"), TokenPrune(authRepo.NewAuthRepository(db)))
	}
}

// SessionGC purges expired in-memory carts.
func SessionGC(p Purger) func(...string) {
	return func(...string) {
		if n := p.Purge(); n > 0 {
			log.Info().Int("purged", n).Msg("expired cart sessions removed")
		}
	}
}

// TokenPrune deletes revoked and expired API tokens.
func TokenPrune(repo *authRepo.AuthRepository) func(...string) {
	return func(...string) {
		n, err := repo.PruneTokens(time.Now())
		if err != nil {
			log.Error().Err(err).Msg("token prune failed")
			return
		}
		log.Info().Int64("deleted", n).Msg("api tokens pruned")
	}
}
