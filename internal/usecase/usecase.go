package usecase

import (
	"context"
	"time"

	"github.com/jaimerodas/elixirschool/internal/catalog"
	"github.com/jaimerodas/elixirschool/internal/gateway/github"
	"github.com/jaimerodas/elixirschool/internal/gateway/slack"
	"github.com/jaimerodas/elixirschool/internal/repository"
	"github.com/jaimerodas/elixirschool/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	EligibilityUsecaseInterface
	InviteUsecaseInterface
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
) InterfaceUsecase {
	return domain.New(log, ctx, cat, contributors, inviter, repo, timeout)
}
