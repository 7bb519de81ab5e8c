package listing

import (
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/nft"
)

// ListRequest is a seller's request to put an NFT on the market
type ListRequest struct {
	NftID           string        `json:"nftId" validate:"required"`
	Price           uint64        `json:"price" validate:"gt=0"`
	Currency        string        `json:"currency" validate:"required,alpha,max=8"`
	ExpiresAt       *uint64       `json:"expiresAt,omitempty"`
	LicenseTerms    *LicenseTerms `json:"licenseTerms,omitempty"`
	IsAuction       bool          `json:"isAuction"`
	AuctionDuration *uint64       `json:"auctionDuration,omitempty" validate:"omitempty,gt=0"`
	MinBidIncrement *uint64       `json:"minBidIncrement,omitempty" validate:"omitempty,gt=0"`
}

// BidRequest carries a bid in e8s or as a display decimal. Display amounts
// are scaled with the listing's currency.
type BidRequest struct {
	Amount    string  `json:"amount"`
	AmountE8s *uint64 `json:"amountE8s"`
}

// Ledger is the subset of the marketplace ledger serving listings
type Ledger interface {
	GetListing(ctx ctx.Ctx, id string) (*Listing, error)
	GetListings(ctx ctx.Ctx) ([]Listing, error)
	GetListingsBySeller(ctx ctx.Ctx, seller domain.Principal) ([]Listing, error)
	GetActiveListingsByNft(ctx ctx.Ctx, nftID string) ([]Listing, error)
	GetExpiredListings(ctx ctx.Ctx) ([]Listing, error)
	ListNft(ctx ctx.Ctx, caller domain.Principal, req ListRequest) (string, error)
	PlaceBid(ctx ctx.Ctx, caller domain.Principal, id string, amount uint64) error
	BuyNft(ctx ctx.Ctx, caller domain.Principal, id string) error
	CancelListing(ctx ctx.Ctx, caller domain.Principal, id string) error
	GetMarketplaceStats(ctx ctx.Ctx) (*Stats, error)
	CleanupExpiredListings(ctx ctx.Ctx) (uint32, error)
}

// Price is an e8s amount with its display form
type Price struct {
	E8s     uint64 `json:"e8s"`
	Display string `json:"display"`
}

// View is the listing detail page
type View struct {
	Listing        *Listing      `json:"listing"`
	Price          Price         `json:"price"`
	CurrentBid     *Price        `json:"currentBid,omitempty"`
	MinimumNextBid *Price        `json:"minimumNextBid,omitempty"`
	Purchasable    bool          `json:"purchasable"`
	Biddable       bool          `json:"biddable"`
	TimeRemaining  *Remaining    `json:"timeRemaining,omitempty"`
	Actions        Actions       `json:"actions"`
	Seller         string        `json:"seller"`
	Nft            *nft.Metadata `json:"nft,omitempty"`
	Bids           []BidReceipt  `json:"bids"`
	BidCount       int           `json:"bidCount"`
	MyBids         []BidReceipt  `json:"myBids,omitempty"`
}

// Card is one entry of the marketplace grid
type Card struct {
	ID            string        `json:"id"`
	NftID         string        `json:"nftId"`
	Seller        string        `json:"seller"`
	Status        Status        `json:"status"`
	Price         Price         `json:"price"`
	IsAuction     bool          `json:"isAuction"`
	TimeRemaining *Remaining    `json:"timeRemaining,omitempty"`
	Actions       Actions       `json:"actions"`
	Nft           *nft.Metadata `json:"nft,omitempty"`
}

type StatsView struct {
	Stats
	SuccessRate      SuccessRate `json:"successRate"`
	SuccessRateLabel string      `json:"successRateLabel"`
	AverageSale      *Price      `json:"averageSale,omitempty"`
	Volume           Price       `json:"volume"`
}

type Usecase interface {
	GetView(ctx ctx.Ctx, id string, viewer domain.Principal, now time.Time) (*View, error)
	ListActive(ctx ctx.Ctx, viewer domain.Principal, now time.Time) ([]Card, error)
	ListBySeller(ctx ctx.Ctx, seller, viewer domain.Principal, now time.Time) ([]Card, error)
	// ListByNft returns the live listings of one NFT
	ListByNft(ctx ctx.Ctx, nftID string, viewer domain.Principal, now time.Time) ([]Card, error)
	PlaceBid(ctx ctx.Ctx, id string, bidder domain.Principal, req BidRequest, now time.Time) (*BidReceipt, error)
	Buy(ctx ctx.Ctx, id string, buyer domain.Principal, now time.Time) error
	Cancel(ctx ctx.Ctx, id string, actor domain.Principal) error
	Create(ctx ctx.Ctx, seller domain.Principal, req ListRequest) (string, error)
	Stats(ctx ctx.Ctx) (*StatsView, error)
	SweepExpired(ctx ctx.Ctx, now time.Time) (int, error)
}
