package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/delivery"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
	"github.com/x-xyz/ipmarket/middleware"
	authMiddleware "github.com/x-xyz/ipmarket/stores/auth/delivery/http/middleware"
)

type handler struct {
	listingUC listing.Usecase
	now       func() time.Time
}

func New(
	e *echo.Echo,
	listingUC listing.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware,
) {
	newHandler(e, listingUC, authMiddleware, time.Now)
}

func newHandler(
	e *echo.Echo,
	listingUC listing.Usecase,
	authMiddleware *authMiddleware.AuthMiddleware,
	now func() time.Time,
) {
	h := &handler{listingUC, now}

	gs := e.Group("/listings")
	gs.GET("", h.listActive, authMiddleware.OptionalAuth())
	gs.POST("", h.create, authMiddleware.Auth())

	g := e.Group("/listings/:id")
	g.GET("", h.get, authMiddleware.OptionalAuth())
	g.POST("/bids", h.bid, authMiddleware.Auth())
	g.POST("/buy", h.buy, authMiddleware.Auth())
	g.POST("/cancel", h.cancel, authMiddleware.Auth())

	e.GET("/sellers/:principal/listings", h.listBySeller, middleware.IsValidPrincipal("principal"), authMiddleware.OptionalAuth())
	e.GET("/nfts/:id/listings", h.listByNft, authMiddleware.OptionalAuth())
	e.GET("/stats", h.stats)

	ga := e.Group("/admin", authMiddleware.Auth(), authMiddleware.IsAdmin())
	ga.POST("/listings/sweep", h.sweep)
}

// listActive
//
//	@Summary		Marketplace listings
//	@Description	Active fixed price listings and running auctions, newest first
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	[]listing.Card
//	@Failure		502
//	@Router			/listings [get]
func (h *handler) listActive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUC.ListActive(ctx, authMiddleware.Principal(c), h.now())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// listBySeller
//
//	@Summary		Seller listings
//	@Tags			listings
//	@Produce		json
//	@Param			principal	path		string	true	"seller principal"
//	@Success		200			{object}	[]listing.Card
//	@Failure		400
//	@Router			/sellers/{principal}/listings [get]
func (h *handler) listBySeller(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUC.ListBySeller(ctx, domain.Principal(c.Param("principal")), authMiddleware.Principal(c), h.now())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// listByNft
//
//	@Summary		Live listings of an NFT
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"nft id"
//	@Success		200	{object}	[]listing.Card
//	@Failure		502
//	@Router			/nfts/{id}/listings [get]
func (h *handler) listByNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUC.ListByNft(ctx, c.Param("id"), authMiddleware.Principal(c), h.now())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Listing detail
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	listing.View
//	@Failure		404
//	@Router			/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUC.GetView(ctx, c.Param("id"), authMiddleware.Principal(c), h.now())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// create
//
//	@Summary		List an NFT
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		listing.ListRequest	true	"params"
//	@Success		201		{object}	object{id=string}
//	@Failure		400
//	@Router			/listings [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := listing.ListRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id, err := h.listingUC.Create(ctx, authMiddleware.Principal(c), req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]string{"id": id})
}

// bid
//
//	@Summary		Place a bid
//	@Description	Amount as a display decimal in the listing currency (`"5.1"`) or in e8s
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"listing id"
//	@Param			params	body		listing.BidRequest	true	"params"
//	@Success		201		{object}	listing.BidReceipt
//	@Failure		400
//	@Failure		422		{object}	object{data=string}	"rejection code"
//	@Router			/listings/{id}/bids [post]
func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := listing.BidRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if req.AmountE8s == nil && req.Amount == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAmount)
	}

	receipt, err := h.listingUC.PlaceBid(ctx, c.Param("id"), authMiddleware.Principal(c), req, h.now())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, receipt)
}

// buy
//
//	@Summary		Buy a fixed price listing
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Param			id	path	string	true	"listing id"
//	@Success		200
//	@Failure		422	{object}	object{data=string}	"rejection code"
//	@Router			/listings/{id}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.listingUC.Buy(ctx, c.Param("id"), authMiddleware.Principal(c), h.now()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// cancel
//
//	@Summary		Cancel a listing
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Param			id	path	string	true	"listing id"
//	@Success		200
//	@Failure		403
//	@Failure		422	{object}	object{data=string}	"rejection code"
//	@Router			/listings/{id}/cancel [post]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.listingUC.Cancel(ctx, c.Param("id"), authMiddleware.Principal(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// stats
//
//	@Summary		Marketplace statistics
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	listing.StatsView
//	@Router			/stats [get]
func (h *handler) stats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUC.Stats(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) sweep(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	n, err := h.listingUC.SweepExpired(ctx, h.now())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]int{"cleaned": n})
}
