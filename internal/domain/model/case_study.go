package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media item types allowed in a case study gallery.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeEmbed = "embed"
)

// CaseStudy is a structured project write-up owned by exactly one portfolio.
// The (portfolio, slug) pair is unique; slugs may repeat across portfolios.
type CaseStudy struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Portfolio         primitive.ObjectID `bson:"portfolio" json:"portfolio"`
	Title             string             `bson:"title" json:"title"`
	Slug              string             `bson:"slug" json:"slug"`
	Overview          string             `bson:"overview" json:"overview"`
	ProblemStatement  string             `bson:"problemStatement,omitempty" json:"problemStatement,omitempty"`
	Solution          string             `bson:"solution,omitempty" json:"solution,omitempty"`
	MediaGallery      []MediaItem        `bson:"mediaGallery,omitempty" json:"mediaGallery,omitempty"`
	Timeline          []TimelineItem     `bson:"timeline,omitempty" json:"timeline,omitempty"`
	ToolsTechnologies []string           `bson:"toolsTechnologies,omitempty" json:"toolsTechnologies,omitempty"`
	Outcomes          Outcomes           `bson:"outcomes,omitempty" json:"outcomes"`
	Published         bool               `bson:"published" json:"published"`
	Order             int                `bson:"order" json:"order"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MediaItem is one entry of a case study's media gallery.
type MediaItem struct {
	Type    string `bson:"type" json:"type" validate:"omitempty,oneof=image video embed"`
	URL     string `bson:"url" json:"url"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
	Order   int    `bson:"order" json:"order"`
}

// TimelineItem is one milestone in a case study timeline.
type TimelineItem struct {
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Date        *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Order       int        `bson:"order" json:"order"`
}

// Outcomes collects the measurable results and testimonials of a case study.
type Outcomes struct {
	Metrics      []Metric      `bson:"metrics,omitempty" json:"metrics,omitempty"`
	Testimonials []Testimonial `bson:"testimonials,omitempty" json:"testimonials,omitempty"`
}

type Metric struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}

type Testimonial struct {
	Name  string `bson:"name" json:"name"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
	Quote string `bson:"quote" json:"quote"`
}
