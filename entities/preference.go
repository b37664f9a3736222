package entities

import (
	"github.com/google/uuid"
)

// UserPreference is a per-user key/value row. The shopping list flow stores
// the serialized day-type frequencies and the last-used plan id here so the
// editor can repopulate without recomputing.
type UserPreference struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex:idx_user_pref_key" json:"user_id"`
	Key    string    `gorm:"uniqueIndex:idx_user_pref_key" json:"key"`
	Value  string    `gorm:"type:text" json:"value"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
