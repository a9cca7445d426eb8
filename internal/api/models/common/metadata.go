package common

import (
	"time"

	"github.com/lloydmeta/notably/internal/domain/metadata"
)

type Metadata struct {
	CreatedAt time.Time `json:"created_at" swaggertype:"string" format:"date-time"`
	UpdatedAt time.Time `json:"updated_at" swaggertype:"string" format:"date-time"`
}

func FromDomainMetadata(data *metadata.Metadata) Metadata {
	return Metadata{
		CreatedAt: time.Time(data.CreatedAt),
		UpdatedAt: time.Time(data.UpdatedAt),
	}
}
