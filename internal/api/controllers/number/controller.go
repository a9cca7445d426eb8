package number

import (
	"context"

	apiNumber "github.com/lloydmeta/notably/internal/api/models/number"
	"github.com/lloydmeta/notably/internal/domain/registry"
)

type Controller interface {

	// List returns every registered number in insertion order
	List(ctx context.Context) []int32

	// Add registers a number and returns all registered numbers right after the addition
	Add(ctx context.Context, number int32) []int32

	// Lookup tells whether a number has been registered
	Lookup(ctx context.Context, number int32) apiNumber.LookupResult
}

func New(numbers registry.Registry) Controller {
	return &impl{numbers: numbers}
}

type impl struct {
	numbers registry.Registry
}

func (c *impl) List(ctx context.Context) []int32 {
	return c.numbers.Snapshot()
}

func (c *impl) Add(ctx context.Context, number int32) []int32 {
	return c.numbers.Append(number)
}

func (c *impl) Lookup(ctx context.Context, number int32) apiNumber.LookupResult {
	return apiNumber.LookupResult{
		Number: number,
		Found:  c.numbers.Contains(number),
	}
}
