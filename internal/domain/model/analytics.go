package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Analytics is the denormalized per-portfolio view rollup. Exactly one
// document exists per portfolio, created lazily on the first recorded view.
// It is only ever mutated through atomic increments, never read-modify-write.
type Analytics struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Portfolio      primitive.ObjectID `bson:"portfolio" json:"portfolio"`
	TotalViews     int64              `bson:"totalViews" json:"totalViews"`
	CaseStudyViews []CaseStudyViews   `bson:"caseStudyViews" json:"caseStudyViews"`
	LastUpdated    time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}

// CaseStudyViews is one per-case-study counter entry inside Analytics.
type CaseStudyViews struct {
	CaseStudy primitive.ObjectID `bson:"caseStudy" json:"caseStudy"`
	Views     int64              `bson:"views" json:"views"`
}

// PageView is an immutable view event. Created once, never updated.
type PageView struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Portfolio primitive.ObjectID  `bson:"portfolio" json:"portfolio"`
	CaseStudy *primitive.ObjectID `bson:"caseStudy,omitempty" json:"caseStudy,omitempty"`
	IPAddress string              `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent string              `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Referrer  string              `bson:"referrer,omitempty" json:"referrer,omitempty"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
}

// ClickEvent is an immutable click event. It never touches the rollup.
type ClickEvent struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Portfolio   primitive.ObjectID  `bson:"portfolio" json:"portfolio"`
	CaseStudy   *primitive.ObjectID `bson:"caseStudy,omitempty" json:"caseStudy,omitempty"`
	ElementID   string              `bson:"elementId,omitempty" json:"elementId,omitempty"`
	ElementType string              `bson:"elementType,omitempty" json:"elementType,omitempty"`
	IPAddress   string              `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent   string              `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Referrer    string              `bson:"referrer,omitempty" json:"referrer,omitempty"`
	Timestamp   time.Time           `bson:"timestamp" json:"timestamp"`
}

// EventMetadata carries the request metadata recorded on view/click events.
type EventMetadata struct {
	IPAddress string
	UserAgent string
	Referrer  string
}
