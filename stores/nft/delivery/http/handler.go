package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/delivery"
	"github.com/x-xyz/ipmarket/domain/nft"
)

type handler struct {
	nftUC nft.Usecase
}

// New registers the nft routes, metadataCache wraps the immutable metadata route
func New(e *echo.Echo, nftUC nft.Usecase, metadataCache echo.MiddlewareFunc) {
	h := &handler{nftUC}

	g := e.Group("/nfts/:id")
	g.GET("", h.get)
	g.GET("/metadata", h.metadata, metadataCache)
}

// get
//
//	@Summary		NFT record
//	@Description	Current owner and mint details, never cached
//	@Tags			nfts
//	@Produce		json
//	@Param			id	path		string	true	"nft id"
//	@Success		200	{object}	nft.NFT
//	@Failure		404
//	@Router			/nfts/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.nftUC.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// metadata
//
//	@Summary		NFT metadata
//	@Tags			nfts
//	@Produce		json
//	@Param			id	path		string	true	"nft id"
//	@Success		200	{object}	nft.Metadata
//	@Failure		404
//	@Router			/nfts/{id}/metadata [get]
func (h *handler) metadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.nftUC.Metadata(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
