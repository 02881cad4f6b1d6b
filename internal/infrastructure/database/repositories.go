package database

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"folio-server/internal/adapter/repository"
	domainRepo "folio-server/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	User      domainRepo.UserRepository
	Portfolio domainRepo.PortfolioRepository
	CaseStudy domainRepo.CaseStudyRepository
	Theme     domainRepo.ThemeRepository
	Analytics domainRepo.AnalyticsRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *mongo.Database, logger *zap.Logger) *Repositories {
	return &Repositories{
		User:      repository.NewUserRepository(db, logger),
		Portfolio: repository.NewPortfolioRepository(db, logger),
		CaseStudy: repository.NewCaseStudyRepository(db, logger),
		Theme:     repository.NewThemeRepository(db, logger),
		Analytics: repository.NewAnalyticsRepository(db, logger),
	}
}
