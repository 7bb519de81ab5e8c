package ledger

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/base/metrics"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
	"github.com/x-xyz/ipmarket/domain/nft"
)

const (
	kindQuery  = "query"
	kindUpdate = "update"

	defaultTimeout = 10 * time.Second
	// ledger replies are small, anything larger is a broken gateway
	maxResponseBytes = 8 << 20
)

var met = metrics.New("ledger")

type client struct {
	client  http.Client
	baseURL string
	timeout time.Duration
}

func NewClient(cfg *ClientCfg) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		client:  cfg.HttpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
	}
}

type callBody struct {
	Args []interface{} `json:"args"`
}

func (c *client) call(ctx bCtx.Ctx, kind, method string, caller domain.Principal, out interface{}, args ...interface{}) (err error) {
	defer met.BumpTime("latency", "method", method).End()
	defer func() {
		if err != nil {
			met.BumpSum("err", 1, "method", method)
		}
	}()

	if args == nil {
		args = []interface{}{}
	}
	body, err := json.Marshal(callBody{Args: args})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("json.Marshal failed")
		return err
	}

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + "/" + kind + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": url}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(HeaderPrincipal, caller.String())
	}
	requestID := bCtx.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(HeaderRequestID, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": url}).Warn("client.Do failed")
		return xerrors.Errorf("ledger %s: %v: %w", method, err, domain.ErrLedgerUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{"url": url, "statusCode": resp.StatusCode}).Warn("resp.StatusCode != 200")
		return xerrors.Errorf("ledger %s: status %d: %w", method, resp.StatusCode, domain.ErrLedgerUnavailable)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": url}).Warn("io.ReadAll failed")
		return xerrors.Errorf("ledger %s: read: %v: %w", method, err, domain.ErrLedgerUnavailable)
	}
	if err := json.Unmarshal(data, out); err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": url}).Error("json.Unmarshal failed")
		return xerrors.Errorf("ledger %s: decode: %v: %w", method, err, domain.ErrLedgerUnavailable)
	}
	return nil
}

// callResult is call for methods replying with an Ok/Err result
func (c *client) callResult(ctx bCtx.Ctx, kind, method string, caller domain.Principal, out interface{}, args ...interface{}) error {
	var raw json.RawMessage
	if err := c.call(ctx, kind, method, caller, &raw, args...); err != nil {
		return err
	}
	return decodeResult(method, raw, out)
}

func (c *client) GetListing(ctx bCtx.Ctx, id string) (*listing.Listing, error) {
	var m marketplaceListing
	if err := c.callResult(ctx, kindQuery, "get_listing_by_id", "", &m, id); err != nil {
		return nil, err
	}
	return m.toDomain()
}

func (c *client) listings(ctx bCtx.Ctx, method string, args ...interface{}) ([]listing.Listing, error) {
	var ms []marketplaceListing
	if err := c.call(ctx, kindQuery, method, "", &ms, args...); err != nil {
		return nil, err
	}
	return toListings(ms)
}

func (c *client) GetListings(ctx bCtx.Ctx) ([]listing.Listing, error) {
	return c.listings(ctx, "get_marketplace_listings")
}

func (c *client) GetListingsBySeller(ctx bCtx.Ctx, seller domain.Principal) ([]listing.Listing, error) {
	return c.listings(ctx, "get_listings_by_seller", seller.String())
}

func (c *client) GetActiveListingsByNft(ctx bCtx.Ctx, nftID string) ([]listing.Listing, error) {
	return c.listings(ctx, "get_active_listings_by_nft", nftID)
}

func (c *client) GetExpiredListings(ctx bCtx.Ctx) ([]listing.Listing, error) {
	return c.listings(ctx, "get_expired_listings")
}

func (c *client) ListNft(ctx bCtx.Ctx, caller domain.Principal, req listing.ListRequest) (string, error) {
	var m marketplaceListing
	if err := c.callResult(ctx, kindUpdate, "list_nft_for_sale", caller, &m, fromListRequest(req)); err != nil {
		return "", err
	}
	return m.ID, nil
}

// updateBool is an update replying Result<bool>, Ok(false) is a refusal
func (c *client) updateBool(ctx bCtx.Ctx, method string, caller domain.Principal, args ...interface{}) error {
	var ok bool
	if err := c.callResult(ctx, kindUpdate, method, caller, &ok, args...); err != nil {
		return err
	}
	if !ok {
		return &Error{Method: method, Kind: "OperationFailed"}
	}
	return nil
}

func (c *client) PlaceBid(ctx bCtx.Ctx, caller domain.Principal, id string, amount uint64) error {
	return c.updateBool(ctx, "place_bid", caller, id, amount)
}

func (c *client) BuyNft(ctx bCtx.Ctx, caller domain.Principal, id string) error {
	return c.updateBool(ctx, "buy_nft", caller, id)
}

func (c *client) CancelListing(ctx bCtx.Ctx, caller domain.Principal, id string) error {
	return c.updateBool(ctx, "cancel_listing", caller, id)
}

func (c *client) GetMarketplaceStats(ctx bCtx.Ctx) (*listing.Stats, error) {
	var s marketplaceStats
	if err := c.call(ctx, kindQuery, "get_marketplace_stats", "", &s); err != nil {
		return nil, err
	}
	return s.toDomain(), nil
}

func (c *client) CleanupExpiredListings(ctx bCtx.Ctx) (uint32, error) {
	var n nat64
	if err := c.callResult(ctx, kindUpdate, "cleanup_expired_listings", "", &n); err != nil {
		return 0, err
	}
	return uint32(n), nil
}

func (c *client) GetNft(ctx bCtx.Ctx, id string) (*nft.NFT, error) {
	var n ipNft
	if err := c.callResult(ctx, kindQuery, "get_nft_by_id", "", &n, id); err != nil {
		return nil, err
	}
	return n.toDomain(), nil
}

func (c *client) GetNftMetadata(ctx bCtx.Ctx, id string) (*nft.Metadata, error) {
	var m nftMetadata
	if err := c.callResult(ctx, kindQuery, "get_nft_metadata", "", &m, id); err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (c *client) Ping(ctx bCtx.Ctx) error {
	var s marketplaceStats
	return c.call(ctx, kindQuery, "get_marketplace_stats", "", &s)
}
