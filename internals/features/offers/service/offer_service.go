package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appModel "magangku_backend/internals/features/applications/model"
	model "magangku_backend/internals/features/offers/model"
)

const defaultOfferTTL = 7 * 24 * time.Hour

// ResolveExpiry: pakai expires_at dari request kalau valid (masa depan),
// kalau kosong fallback 7 hari dari sekarang.
func ResolveExpiry(requested *time.Time, now time.Time) time.Time {
	if requested != nil && requested.After(now) {
		return *requested
	}
	return now.Add(defaultOfferTTL)
}

// IsExpired: offer EXTENDED yang sudah lewat tenggat dianggap hangus
// walaupun sweep cron belum jalan.
func IsExpired(o *model.PlacementOfferModel, now time.Time) bool {
	return o.OfferStatus == model.OfferExtended && now.After(o.OfferExpiresAt)
}

// ExpireOverdue menandai semua offer EXTENDED yang lewat tenggat jadi
// EXPIRED. Lamaran yang masih OFFERED ikut dikembalikan ke INTERVIEWED
// supaya employer bisa membuat offer pengganti. Dipanggil scheduler tiap jam.
func ExpireOverdue(db *gorm.DB, now time.Time) (int64, error) {
	var expired int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var appIDs []uuid.UUID
		if err := tx.Model(&model.PlacementOfferModel{}).
			Where("offer_status = ? AND offer_expires_at < ?", model.OfferExtended, now).
			Pluck("offer_application_id", &appIDs).Error; err != nil {
			return err
		}
		if len(appIDs) == 0 {
			return nil
		}

		res := tx.Model(&model.PlacementOfferModel{}).
			Where("offer_status = ? AND offer_expires_at < ?", model.OfferExtended, now).
			Updates(map[string]interface{}{
				"offer_status":     model.OfferExpired,
				"offer_updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		expired = res.RowsAffected

		return tx.Model(&appModel.ApplicationModel{}).
			Where("application_id IN ? AND application_status = ?", appIDs, appModel.StatusOffered).
			Updates(map[string]interface{}{
				"application_status":  appModel.StatusInterviewed,
				"application_version": gorm.Expr("application_version + 1"),
			}).Error
	})
	return expired, err
}
