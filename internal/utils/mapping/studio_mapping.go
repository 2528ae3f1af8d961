package mapping

import (
	"github.com/DesignDeskHQ/design_desk_app/internal/core/domain"
	"github.com/DesignDeskHQ/design_desk_app/internal/models"
)

// ToModelStudio converts a domain Studio to a model Studio
func ToModelStudio(d domain.Studio) models.Studio {
	return models.Studio{
		StudioID:    d.StudioID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStudio converts a model Studio to a domain Studio
func ToDomainStudio(m models.Studio) domain.Studio {
	return domain.Studio{
		StudioID:    m.StudioID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStudioSlice converts a slice of model Studios to domain Studios
func ToDomainStudioSlice(ms []models.Studio) []domain.Studio {
	ds := make([]domain.Studio, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStudio(m)
	}
	return ds
}
