package ledger

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/ptr"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
)

const (
	seller = domain.Principal("rrkah-fqaaa-aaaaa-aaaaq-cai")
	bidder = domain.Principal("ryjl3-tyaaa-aaaaa-aaaba-cai")
)

const auctionListing = `{
	"id": "LISTING_1",
	"nft_id": "NFT_1",
	"seller": "rrkah-fqaaa-aaaaa-aaaaq-cai",
	"price": 500000000,
	"currency": "ICP",
	"listed_at": "1709294400000000000",
	"expires_at": [],
	"status": {"InAuction": null},
	"license_terms": [{
		"usage_rights": ["print"],
		"duration": [],
		"territory": ["EU"],
		"exclusivity": true,
		"commercial_use": false,
		"modification_rights": false,
		"attribution_required": true
	}],
	"auction_data": [{
		"starting_price": 500000000,
		"current_bid": 500000000,
		"highest_bidder": ["ryjl3-tyaaa-aaaaa-aaaba-cai"],
		"auction_end": 1709899200000000000,
		"min_bid_increment": 10000000
	}]
}`

const fixedListing = `{
	"id": "LISTING_2",
	"nft_id": "NFT_2",
	"seller": "rrkah-fqaaa-aaaaa-aaaaq-cai",
	"price": 100000000,
	"currency": "ICP",
	"listed_at": 1709294400000000000,
	"expires_at": [1709899200000000000],
	"status": {"Active": null},
	"license_terms": [],
	"auction_data": []
}`

type call struct {
	path      string
	args      []json.RawMessage
	principal string
	requestID string
}

type LedgerTestSuite struct {
	suite.Suite
	srv     *httptest.Server
	replies map[string]string
	calls   []call
	im      Client
	ctx     ctx.Ctx
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.replies = map[string]string{}
	s.calls = nil
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var b struct {
			Args []json.RawMessage `json:"args"`
		}
		_ = json.Unmarshal(body, &b)
		s.calls = append(s.calls, call{
			path:      r.URL.Path,
			args:      b.Args,
			principal: r.Header.Get(HeaderPrincipal),
			requestID: r.Header.Get(HeaderRequestID),
		})
		reply, ok := s.replies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(reply))
	}))
	s.im = NewClient(&ClientCfg{BaseURL: s.srv.URL + "/", Timeout: time.Second})
	s.ctx = ctx.WithRequestID(ctx.Background(), "req-1")
}

func (s *LedgerTestSuite) TearDownTest() {
	s.srv.Close()
}

func (s *LedgerTestSuite) TestGetListing() {
	s.replies["/query/get_listing_by_id"] = `{"Ok":` + auctionListing + `}`

	l, err := s.im.GetListing(s.ctx, "LISTING_1")
	s.Require().NoError(err)
	s.Equal("LISTING_1", l.ID)
	s.Equal(listing.StatusInAuction, l.Status)
	s.Equal(uint64(1709294400000000000), l.ListedAt)
	s.Nil(l.ExpiresAt)
	s.Require().NotNil(l.Auction)
	s.Equal(uint64(10000000), l.Auction.MinBidIncrement)
	s.Equal(ptr.Of(bidder), l.Auction.HighestBidder)
	s.Require().NotNil(l.LicenseTerms)
	s.Equal(ptr.Of("EU"), l.LicenseTerms.Territory)
	s.Nil(l.LicenseTerms.Duration)

	s.Require().Len(s.calls, 1)
	s.Equal(`"LISTING_1"`, string(s.calls[0].args[0]))
	s.Equal("req-1", s.calls[0].requestID)
}

func (s *LedgerTestSuite) TestGetListingErrors() {
	s.replies["/query/get_listing_by_id"] = `{"Err":{"NotFound":null}}`
	_, err := s.im.GetListing(s.ctx, "nope")
	s.ErrorIs(err, domain.ErrNotFound)

	s.replies["/query/get_listing_by_id"] = `{"Ok":{"id":"X","status":{"InAuction":null},"auction_data":[],"expires_at":[],"license_terms":[]}}`
	_, err = s.im.GetListing(s.ctx, "X")
	s.ErrorIs(err, domain.ErrInvalidState)

	s.replies["/query/get_listing_by_id"] = `{"Ok":{"id":"X","status":{"Paused":null}}}`
	_, err = s.im.GetListing(s.ctx, "X")
	s.ErrorIs(err, domain.ErrLedgerUnavailable)

	s.replies["/query/get_listing_by_id"] = `not json`
	_, err = s.im.GetListing(s.ctx, "X")
	s.ErrorIs(err, domain.ErrLedgerUnavailable)

	delete(s.replies, "/query/get_listing_by_id")
	_, err = s.im.GetListing(s.ctx, "X")
	s.ErrorIs(err, domain.ErrLedgerUnavailable)
}

func (s *LedgerTestSuite) TestUnreachable() {
	s.srv.Close()
	_, err := s.im.GetListings(s.ctx)
	s.ErrorIs(err, domain.ErrLedgerUnavailable)
}

func (s *LedgerTestSuite) TestGetListings() {
	s.replies["/query/get_marketplace_listings"] = `[` + auctionListing + `,` + fixedListing + `]`
	ls, err := s.im.GetListings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(ls, 2)
	s.Equal(listing.StatusActive, ls[1].Status)
	s.Equal(ptr.Of(uint64(1709899200000000000)), ls[1].ExpiresAt)
	s.Nil(ls[1].Auction)
	s.Empty(s.calls[0].args)

	s.replies["/query/get_listings_by_seller"] = `[` + fixedListing + `]`
	ls, err = s.im.GetListingsBySeller(s.ctx, seller)
	s.Require().NoError(err)
	s.Len(ls, 1)
	s.Equal(`"`+seller.String()+`"`, string(s.calls[1].args[0]))

	s.replies["/query/get_expired_listings"] = `[]`
	ls, err = s.im.GetExpiredListings(s.ctx)
	s.NoError(err)
	s.Empty(ls)

	s.replies["/query/get_active_listings_by_nft"] = `[` + fixedListing + `]`
	ls, err = s.im.GetActiveListingsByNft(s.ctx, "NFT_2")
	s.NoError(err)
	s.Len(ls, 1)
}

func (s *LedgerTestSuite) TestPlaceBid() {
	s.replies["/update/place_bid"] = `{"Ok":true}`
	s.Require().NoError(s.im.PlaceBid(s.ctx, bidder, "LISTING_1", 510000000))
	s.Equal(bidder.String(), s.calls[0].principal)
	s.Equal(`510000000`, string(s.calls[0].args[1]))

	s.replies["/update/place_bid"] = `{"Err":{"BidTooLow":null}}`
	err := s.im.PlaceBid(s.ctx, bidder, "LISTING_1", 505000000)
	r, ok := listing.AsRejection(err)
	s.True(ok)
	s.Equal(listing.BelowMinimum, r)

	s.replies["/update/place_bid"] = `{"Err":{"AuctionEnded":null}}`
	r, ok = listing.AsRejection(s.im.PlaceBid(s.ctx, bidder, "LISTING_1", 600000000))
	s.True(ok)
	s.Equal(listing.AuctionEnded, r)

	s.replies["/update/place_bid"] = `{"Err":{"InsufficientFunds":null}}`
	err = s.im.PlaceBid(s.ctx, bidder, "LISTING_1", 600000000)
	s.ErrorIs(err, domain.ErrLedgerRejected)
	var lerr *Error
	s.Require().True(errors.As(err, &lerr))
	s.Equal("InsufficientFunds", lerr.Kind)

	s.replies["/update/place_bid"] = `{"Ok":false}`
	s.ErrorIs(s.im.PlaceBid(s.ctx, bidder, "LISTING_1", 600000000), domain.ErrLedgerRejected)
}

func (s *LedgerTestSuite) TestBuyAndCancel() {
	s.replies["/update/buy_nft"] = `{"Ok":true}`
	s.NoError(s.im.BuyNft(s.ctx, bidder, "LISTING_2"))

	s.replies["/update/cancel_listing"] = `{"Err":{"Unauthorized":null}}`
	s.ErrorIs(s.im.CancelListing(s.ctx, bidder, "LISTING_2"), domain.ErrUnauthorized)
}

func (s *LedgerTestSuite) TestListNft() {
	s.replies["/update/list_nft_for_sale"] = `{"Ok":` + fixedListing + `}`
	id, err := s.im.ListNft(s.ctx, seller, listing.ListRequest{
		NftID:     "NFT_2",
		Price:     100000000,
		Currency:  "ICP",
		ExpiresAt: ptr.Of(uint64(1709899200000000000)),
		LicenseTerms: &listing.LicenseTerms{
			UsageRights: []string{"print"},
			Duration:    ptr.Of(uint64(42)),
		},
	})
	s.Require().NoError(err)
	s.Equal("LISTING_2", id)

	var sent map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.calls[0].args[0], &sent))
	s.Equal([]interface{}{float64(1709899200000000000)}, sent["expires_at"])
	s.Equal([]interface{}{}, sent["auction_duration"])
	s.Equal(false, sent["is_auction"])
	terms := sent["license_terms"].([]interface{})
	s.Require().Len(terms, 1)
	s.Equal([]interface{}{float64(42)}, terms[0].(map[string]interface{})["duration"])
	s.Equal([]interface{}{}, terms[0].(map[string]interface{})["territory"])
}

func (s *LedgerTestSuite) TestStats() {
	s.replies["/query/get_marketplace_stats"] = `{
		"total_nfts": 12, "total_users": 5, "total_listings": 10,
		"active_listings": 4, "active_auctions": 1, "total_volume": "3000000000",
		"average_sale_price": [300000000]
	}`
	st, err := s.im.GetMarketplaceStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(10), st.TotalListings)
	s.Equal(uint64(3000000000), st.TotalVolume)
	s.Equal(ptr.Of(uint64(300000000)), st.AverageSalePrice)
	s.NoError(s.im.Ping(s.ctx))

	s.replies["/update/cleanup_expired_listings"] = `{"Ok":3}`
	n, err := s.im.CleanupExpiredListings(s.ctx)
	s.NoError(err)
	s.Equal(uint32(3), n)
}

func (s *LedgerTestSuite) TestNft() {
	s.replies["/query/get_nft_by_id"] = `{"Ok":{
		"id": "NFT_1", "ip_id": "IP_1", "token_id": 7,
		"owner": "rrkah-fqaaa-aaaaa-aaaaq-cai", "creator": "rrkah-fqaaa-aaaaa-aaaaq-cai",
		"name": "Sunrise", "description": "", "image": "ipfs://x",
		"royalty_percentage": 5, "is_transferable": true, "minted_at": 1,
		"collection_name": []
	}}`
	n, err := s.im.GetNft(s.ctx, "NFT_1")
	s.Require().NoError(err)
	s.Equal(uint64(7), n.TokenID)
	s.Nil(n.CollectionName)

	s.replies["/query/get_nft_metadata"] = `{"Ok":{
		"token_id": "NFT_1", "name": "Sunrise", "description": "", "image": "ipfs://x",
		"external_url": [], "ip_category": "Art", "ip_type": "DigitalArt",
		"creator": "rrkah-fqaaa-aaaaa-aaaaq-cai", "license_type": ["CC-BY"], "minted_date": "2024-03-01"
	}}`
	m, err := s.im.GetNftMetadata(s.ctx, "NFT_1")
	s.Require().NoError(err)
	s.Equal(ptr.Of("CC-BY"), m.LicenseType)
	s.Nil(m.ExternalURL)
}

func TestDecodeVariant(t *testing.T) {
	cases := []struct {
		raw string
		tag string
		ok  bool
	}{
		{`{"Active":null}`, "Active", true},
		{`{"Ok":{"a":1}}`, "Ok", true},
		{`{}`, "", false},
		{`{"A":null,"B":null}`, "", false},
		{`"Active"`, "", false},
	}
	for _, c := range cases {
		tag, _, err := decodeVariant(json.RawMessage(c.raw))
		if !c.ok {
			if err == nil {
				t.Errorf("%s: expected error", c.raw)
			}
			continue
		}
		if err != nil || tag != c.tag {
			t.Errorf("%s: got %q, %v", c.raw, tag, err)
		}
	}
	if !strings.Contains(mapError("m", "FileTooLarge").Error(), "FileTooLarge") {
		t.Error("unmapped kind lost")
	}
}
