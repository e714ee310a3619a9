// Package domain contains application usecases orchestrating eligibility
// resolution and invitation dispatch.
package domain

import (
	"context"
	"time"

	"github.com/jaimerodas/elixirschool/internal/catalog"
	"github.com/jaimerodas/elixirschool/internal/gateway/github"
	"github.com/jaimerodas/elixirschool/internal/gateway/slack"
	"github.com/jaimerodas/elixirschool/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx          context.Context
	log          *zap.SugaredLogger
	catalog      *catalog.Catalog
	contributors github.ContributorLister
	inviter      slack.Inviter
	repo         repository.Repository
	timeout      time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	cat *catalog.Catalog,
	contributors github.ContributorLister,
	inviter slack.Inviter,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:          ctx,
		log:          log,
		catalog:      cat,
		contributors: contributors,
		inviter:      inviter,
		repo:         repo,
		timeout:      timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
