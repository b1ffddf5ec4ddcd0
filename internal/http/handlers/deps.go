package handlers

import (
	"github.com/jmoiron/sqlx"

	"bazaar/internal/auth"
	"bazaar/internal/config"
	"bazaar/internal/repos"
	"bazaar/internal/services"
)

type Deps struct {
	UserHandler    *UserHandler
	ProductHandler *ProductHandler
	ReviewHandler  *ReviewHandler
	OrderHandler   *OrderHandler
	Tokens         *auth.TokenCodec
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	listingRepo := repos.NewListingRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	tokens := auth.NewTokenCodec(cfg.JWTSecret)

	accountSvc := services.NewAccountService(userRepo, tokens)
	catalogSvc := services.NewCatalogService(listingRepo)
	moderationSvc := services.NewModerationService(listingRepo)
	reviewSvc := services.NewReviewService(listingRepo, reviewRepo)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		UserHandler:    &UserHandler{Accounts: accountSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc, Moderation: moderationSvc, Reviews: reviewSvc, UploadDir: cfg.UploadDir},
		ReviewHandler:  &ReviewHandler{Reviews: reviewSvc},
		OrderHandler:   &OrderHandler{Orders: orderSvc},
		Tokens:         tokens,
	}
}
