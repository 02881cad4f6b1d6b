package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Portfolio is a user's public profile container. Each user owns at most one
// portfolio, and usernames are unique across all portfolios.
type Portfolio struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	User          primitive.ObjectID  `bson:"user" json:"user"`
	Username      string              `bson:"username" json:"username"`
	Title         string              `bson:"title" json:"title"`
	Bio           string              `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills        []string            `bson:"skills,omitempty" json:"skills,omitempty"`
	SocialLinks   SocialLinks         `bson:"socialLinks,omitempty" json:"socialLinks"`
	SelectedTheme *primitive.ObjectID `bson:"selectedTheme,omitempty" json:"selectedTheme,omitempty"`
	CustomTheme   *CustomTheme        `bson:"customTheme,omitempty" json:"customTheme,omitempty"`
	Published     bool                `bson:"published" json:"published"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// SocialLinks is the fixed set of optional profile URLs.
type SocialLinks struct {
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
	Github   string `bson:"github,omitempty" json:"github,omitempty"`
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Dribbble string `bson:"dribbble,omitempty" json:"dribbble,omitempty"`
	Behance  string `bson:"behance,omitempty" json:"behance,omitempty"`
}

// CustomTheme is an inline color/font override carried on the portfolio
// itself, independent of any shared Theme document.
type CustomTheme struct {
	Colors ThemeColors `bson:"colors,omitempty" json:"colors"`
	Fonts  ThemeFonts  `bson:"fonts,omitempty" json:"fonts"`
}
