package repository

import (
	"sync"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	deps  Deps
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(deps Deps) *Factory {
	return &Factory{
		deps: deps,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.deps)
	})
	return f.repos
}

// GetReportRepository returns the report repository instance
func (f *Factory) GetReportRepository() ReportRepository {
	return f.GetRepositories().Report
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetRiderRepository returns the rider repository instance
func (f *Factory) GetRiderRepository() RiderRepository {
	return f.GetRepositories().Rider
}

// GetAnalyticsRepository returns the analytics repository instance
func (f *Factory) GetAnalyticsRepository() AnalyticsRepository {
	return f.GetRepositories().Analytics
}

// GetExportRepository returns the export repository instance
func (f *Factory) GetExportRepository() ExportRepository {
	return f.GetRepositories().Export
}

// GetAuditRepository returns the audit repository instance
func (f *Factory) GetAuditRepository() AuditRepository {
	return f.GetRepositories().Audit
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(deps Deps) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(deps)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
