package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Theme is a named color/font style. System themes have no creator; custom
// themes are owned by the user who authored them.
type Theme struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Description   string              `bson:"description,omitempty" json:"description,omitempty"`
	Colors        ThemeColors         `bson:"colors" json:"colors"`
	Fonts         ThemeFonts          `bson:"fonts" json:"fonts"`
	IsSystemTheme bool                `bson:"isSystemTheme" json:"isSystemTheme"`
	CreatedBy     *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
}

// ThemeColors holds the four required theme colors.
type ThemeColors struct {
	Primary    string `bson:"primary" json:"primary"`
	Secondary  string `bson:"secondary" json:"secondary"`
	Background string `bson:"background" json:"background"`
	Text       string `bson:"text" json:"text"`
}

// ThemeFonts holds the two required theme fonts.
type ThemeFonts struct {
	Primary   string `bson:"primary" json:"primary"`
	Secondary string `bson:"secondary" json:"secondary"`
}
