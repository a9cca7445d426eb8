package number

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apiNumber "github.com/lloydmeta/notably/internal/api/models/number"
	"github.com/lloydmeta/notably/internal/domain/registry"
)

var ctx = context.Background()

func Test_impl(t *testing.T) {
	c := New(registry.NewRegistry())
	assert.EqualValues(t, []int32{}, c.List(ctx))
	assert.EqualValues(t, apiNumber.LookupResult{Number: 5, Found: false}, c.Lookup(ctx, 5))
	assert.EqualValues(t, []int32{5}, c.Add(ctx, 5))
	assert.EqualValues(t, []int32{5, 7}, c.Add(ctx, 7))
	assert.EqualValues(t, []int32{5, 7}, c.List(ctx))
	assert.EqualValues(t, apiNumber.LookupResult{Number: 5, Found: true}, c.Lookup(ctx, 5))
}
