// Package cart bulk-creates named cart records on the portal, one sequential
// PUT per cart.
package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maxviazov/portal-tools/internal/portal"
	"github.com/maxviazov/portal-tools/pkg/progress"
)

// Putter is the one portal operation the builder needs.
type Putter interface {
	PutCart(ctx context.Context, cart portal.Cart) error
}

// Builder creates carts in sequence. A failed PUT is logged and skipped; the
// loop keeps going, which is how the bulk tool has always behaved.
type Builder struct {
	portal Putter
	bar    progress.Bar
	log    zerolog.Logger
}

// New builds a Builder.
func New(p Putter, bar progress.Bar, logg *zerolog.Logger) *Builder {
	return &Builder{portal: p, bar: bar, log: *logg}
}

// Run creates count carts named "<prefix> 1" through "<prefix> <count>" with
// fresh UUID identifiers and returns how many were actually created.
func (b *Builder) Run(ctx context.Context, prefix string, count int) int {
	b.bar.ChangeMax(count)

	created := 0
	for i := 1; i <= count; i++ {
		c := portal.Cart{
			Identifier: uuid.NewString(),
			Name:       fmt.Sprintf("%s %d", prefix, i),
			Status:     "current",
		}
		if err := b.portal.PutCart(ctx, c); err != nil {
			b.log.Error().Err(err).Str("name", c.Name).Msg("cart creation failed")
		} else {
			created++
		}
		b.bar.Set(i)
	}

	b.bar.Finish()
	return created
}
