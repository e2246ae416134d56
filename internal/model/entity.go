package model

import "time"

type User struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      *string   `json:"name"`
	Timezone  string    `gorm:"default:America/New_York" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyLog is one day's journal entry. A user gets at most one log per date,
// enforced by the composite unique index.
type DailyLog struct {
	ID           int              `gorm:"primaryKey" json:"id"`
	UserID       int              `gorm:"not null;uniqueIndex:uk_user_log_date" json:"user_id"`
	LogDate      string           `gorm:"type:date;not null;uniqueIndex:uk_user_log_date" json:"log_date"`
	CheckinTime  time.Time        `json:"checkin_time"`
	CheckoutTime *time.Time       `json:"checkout_time"`
	InAttention  *string          `json:"in_attention"`
	InObsession  *string          `json:"in_obsession"`
	InAgency     *string          `json:"in_agency"`
	OutTil1      *string          `json:"out_til1"`
	OutTil2      *string          `json:"out_til2"`
	OutTil3      *string          `json:"out_til3"`
	Reading      *string          `json:"reading"`
	LinkDumps    []map[string]any `gorm:"serializer:json" json:"link_dumps"`
}

func (User) TableName() string     { return "users" }
func (DailyLog) TableName() string { return "daily_logs" }
