package poem

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/notably/internal/api/models/common"
	apiPoem "github.com/lloydmeta/notably/internal/api/models/poem"
	"github.com/lloydmeta/notably/internal/domain/poem"
)

type Controller interface {
	// Get returns the current Poem
	Get(ctx context.Context) (*apiPoem.Poem, *common.ApiError)
}

func New(reader poem.Reader) Controller {
	return &impl{reader: reader}
}

type impl struct {
	reader poem.Reader
}

func (c *impl) Get(ctx context.Context) (*apiPoem.Poem, *common.ApiError) {
	result, err := c.reader.Read(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read poem")
		return nil, common.NewApiError(http.StatusInternalServerError, err.Error())
	} else {
		p := apiPoem.FromDomainPoem(result)
		return &p, nil
	}
}
