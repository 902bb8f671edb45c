package postgres

import (
	"context"
	"time"
)

// TriggerEvent records a symbol reaching its GTT price: which symbol, at what
// price, and with which watchlist levels at the time.
type TriggerEvent struct {
	ID uint `gorm:"primaryKey"`

	Symbol    string  `gorm:"type:text;not null;index:idx_trigger_event_symbol"`
	Direction string  `gorm:"type:varchar(16);not null"`
	Price     float64 `gorm:"type:numeric;not null"` // last price that fired the trigger
	GTTPrice  float64 `gorm:"type:numeric;not null"`

	FiredAt time.Time `gorm:"not null;index:idx_trigger_event_fired_at"`

	RecordedAt time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default table name for GORM.
func (TriggerEvent) TableName() string {
	return "trigger_event"
}

func (p *PostgresClient) InsertTriggerEvent(ctx context.Context, event *TriggerEvent) error {
	return p.DB.WithContext(ctx).Create(event).Error
}

// ListTriggerEvents returns events fired since the given time, newest first.
func (p *PostgresClient) ListTriggerEvents(ctx context.Context, since time.Time) ([]TriggerEvent, error) {
	var events []TriggerEvent
	err := p.DB.WithContext(ctx).
		Where("fired_at >= ?", since).
		Order("fired_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteOldTriggerEvents trims history older than the given time.
func (p *PostgresClient) DeleteOldTriggerEvents(ctx context.Context, before time.Time) error {
	return p.DB.WithContext(ctx).
		Where("fired_at < ?", before).
		Delete(&TriggerEvent{}).Error
}
