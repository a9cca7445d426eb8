package health

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/notably/internal/api/models/common"
	apiHealth "github.com/lloydmeta/notably/internal/api/models/health"
	"github.com/lloydmeta/notably/internal/domain/health"
)

const Message = "API Services"

type Controller interface {

	// Check probes every dependency, failing with 503 on the first one that is down
	Check(ctx context.Context) (*apiHealth.Status, *common.ApiError)
}

func New(dependencies ...health.Dependency) Controller {
	return &impl{dependencies: dependencies}
}

type impl struct {
	dependencies []health.Dependency
}

func (c *impl) Check(ctx context.Context) (*apiHealth.Status, *common.ApiError) {
	if err := health.Check(ctx, c.dependencies); err != nil {
		log.Warn().Err(err).Msg("Health check failed")
		return nil, common.NewApiError(http.StatusServiceUnavailable, err.Error())
	} else {
		return &apiHealth.Status{
			Status:  apiHealth.StatusOk,
			Message: Message,
		}, nil
	}
}
