// Package tenantRepo is the read model for tenant configuration. The engine
// only reads tenants; provisioning lives outside this service.
package tenantRepo

import "turnero/models"

// TenantRepository resolves tenant configuration for inbound conversations.
type TenantRepository interface {
	GetBySlug(slug string) (*models.Tenant, error)
	UpdateServices(slug string, services []models.Service) error
}
