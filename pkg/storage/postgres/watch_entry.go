package postgres

import (
	"context"
	"time"

	"gorm.io/gorm/clause"
)

// WatchEntry is one row of the GTT watchlist: a symbol with its trade
// direction and price levels. The engine consumes Direction and GTTPrice;
// target and trigger prices are kept for the order placement the operator
// runs downstream.
type WatchEntry struct {
	ID uint `gorm:"primaryKey"`

	Symbol    string `gorm:"type:text;not null;uniqueIndex:idx_watch_entry_symbol"`
	Direction string `gorm:"type:varchar(16);not null"` // "LONG" or "SHORT"

	TargetPrice  float64 `gorm:"type:numeric;not null"`
	TriggerPrice float64 `gorm:"type:numeric;not null"`
	GTTPrice     float64 `gorm:"type:numeric;not null"`

	Enabled bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the default table name for GORM.
func (WatchEntry) TableName() string {
	return "watch_entry"
}

// UpsertWatchEntry inserts an entry or, when the symbol already exists,
// overwrites its direction and price levels.
func (p *PostgresClient) UpsertWatchEntry(ctx context.Context, entry *WatchEntry) error {
	return p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"direction", "target_price", "trigger_price", "gtt_price", "enabled", "updated_at",
		}),
	}).Create(entry).Error
}

// ListWatchEntries returns all enabled watchlist rows.
func (p *PostgresClient) ListWatchEntries(ctx context.Context) ([]WatchEntry, error) {
	var entries []WatchEntry
	err := p.DB.WithContext(ctx).
		Where("enabled = ?", true).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DisableWatchEntry keeps the row but drops it from future loads.
func (p *PostgresClient) DisableWatchEntry(ctx context.Context, symbol string) error {
	return p.DB.WithContext(ctx).
		Model(&WatchEntry{}).
		Where("symbol = ?", symbol).
		Update("enabled", false).Error
}
