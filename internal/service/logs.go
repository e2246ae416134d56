package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aoa/internal/model"

	"gorm.io/gorm"
)

const DateLayout = "2006-01-02"

// LogService is the daily-log lifecycle engine: check-in creates, checkout
// upserts and stamps checkout_time, edit patches in place. Uniqueness per
// (user, date) is left to the store's unique index, so concurrent double
// check-ins lose at the database and come back as ErrConflict.
type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService { return &LogService{db: db} }

// CheckIn creates the morning entry. It never overwrites: a second log for
// the same (user, date) fails with ErrConflict.
func (s *LogService) CheckIn(ctx context.Context, userID int, in model.LogCreate) (*model.DailyLog, error) {
	log, err := createLog(s.db.WithContext(ctx), userID, in)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// createLog inserts a fresh log on the given handle so callers can run it
// inside their own transaction.
func createLog(tx *gorm.DB, userID int, in model.LogCreate) (*model.DailyLog, error) {
	date := in.LogDate
	if date == "" {
		date = time.Now().Format(DateLayout)
	}
	log := model.DailyLog{
		UserID:      userID,
		LogDate:     date,
		CheckinTime: time.Now().UTC(),
		InAttention: in.InAttention,
		InObsession: in.InObsession,
		InAgency:    in.InAgency,
		Reading:     in.Reading,
		LinkDumps:   in.LinkDumps,
	}
	if log.LinkDumps == nil {
		log.LinkDumps = []map[string]any{}
	}
	if err := tx.Create(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("log for %s: %w", date, ErrConflict)
		}
		return nil, fmt.Errorf("insert log: %w", err)
	}
	return &log, nil
}

// Checkout closes the day. A missing log is created empty first; either way
// the supplied fields are applied and checkout_time is set to now, even on a
// repeat checkout. Lookup, insert and update commit as one transaction so no
// half-checked-out log is ever visible.
func (s *LogService) Checkout(ctx context.Context, userID int, date string, in model.LogCheckout) (*model.DailyLog, error) {
	var log model.DailyLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND log_date = ?", userID, date).First(&log).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created, cerr := createLog(tx, userID, model.LogCreate{LogDate: date})
			if cerr != nil {
				return cerr
			}
			log = *created
		case err != nil:
			return fmt.Errorf("query log: %w", err)
		}

		log.OutTil1 = &in.OutTil1
		if in.OutTil2 != nil {
			log.OutTil2 = in.OutTil2
		}
		if in.OutTil3 != nil {
			log.OutTil3 = in.OutTil3
		}
		if in.Reading != nil {
			log.Reading = in.Reading
		}
		if in.LinkDumps != nil {
			log.LinkDumps = in.LinkDumps
		}
		now := time.Now().UTC()
		log.CheckoutTime = &now

		if err := tx.Save(&log).Error; err != nil {
			return fmt.Errorf("save checkout: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Edit patches only the supplied fields. It never creates and never touches
// checkin_time or checkout_time.
func (s *LogService) Edit(ctx context.Context, userID int, date string, in model.LogUpdate) (*model.DailyLog, error) {
	var log model.DailyLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND log_date = ?", userID, date).First(&log).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("log for %s: %w", date, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("query log: %w", err)
		}

		if in.InAttention != nil {
			log.InAttention = in.InAttention
		}
		if in.InObsession != nil {
			log.InObsession = in.InObsession
		}
		if in.InAgency != nil {
			log.InAgency = in.InAgency
		}
		if in.OutTil1 != nil {
			log.OutTil1 = in.OutTil1
		}
		if in.OutTil2 != nil {
			log.OutTil2 = in.OutTil2
		}
		if in.OutTil3 != nil {
			log.OutTil3 = in.OutTil3
		}
		if in.Reading != nil {
			log.Reading = in.Reading
		}
		if in.LinkDumps != nil {
			log.LinkDumps = in.LinkDumps
		}

		if err := tx.Save(&log).Error; err != nil {
			return fmt.Errorf("save edit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Get returns the log for (user, date), or nil without error when absent.
func (s *LogService) Get(ctx context.Context, userID int, date string) (*model.DailyLog, error) {
	var log model.DailyLog
	err := s.db.WithContext(ctx).Where("user_id = ? AND log_date = ?", userID, date).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query log: %w", err)
	}
	if log.LinkDumps == nil {
		log.LinkDumps = []map[string]any{}
	}
	return &log, nil
}

// ListByUser returns the user's logs newest-date-first. An empty result is
// just an empty slice; the 404-on-empty policy lives at the handler.
func (s *LogService) ListByUser(ctx context.Context, userID, skip, limit int) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("log_date DESC").
		Offset(skip).Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	for i := range logs {
		if logs[i].LinkDumps == nil {
			logs[i].LinkDumps = []map[string]any{}
		}
	}
	return logs, nil
}
