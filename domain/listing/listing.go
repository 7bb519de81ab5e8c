package listing

import (
	"fmt"
	"time"

	"github.com/x-xyz/ipmarket/domain"
	"golang.org/x/xerrors"
)

// Status is the lifecycle state of a listing. Exactly one holds at a time.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusActive
	StatusInAuction
	StatusSold
	StatusCancelled
	StatusExpired
)

var statusNames = map[Status]string{
	StatusActive:    "Active",
	StatusInAuction: "InAuction",
	StatusSold:      "Sold",
	StatusCancelled: "Cancelled",
	StatusExpired:   "Expired",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports Sold, Cancelled and Expired, which never change again
func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusCancelled || s == StatusExpired
}

// ParseStatus maps a ledger variant tag to a Status
func ParseStatus(tag string) (Status, error) {
	for s, name := range statusNames {
		if name == tag {
			return s, nil
		}
	}
	return StatusUnknown, fmt.Errorf("unknown listing status %q", tag)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type AuctionData struct {
	StartingPrice   uint64            `json:"startingPrice"`
	CurrentBid      uint64            `json:"currentBid"`
	HighestBidder   *domain.Principal `json:"highestBidder,omitempty"`
	AuctionEnd      uint64            `json:"auctionEnd"` // ns since epoch
	MinBidIncrement uint64            `json:"minBidIncrement"`
}

// HasBid reports whether anyone has bid yet
func (a *AuctionData) HasBid() bool {
	return a.HighestBidder != nil && *a.HighestBidder != ""
}

type LicenseTerms struct {
	UsageRights         []string `json:"usageRights"`
	Duration            *uint64  `json:"duration,omitempty"` // ns
	Territory           *string  `json:"territory,omitempty"`
	Exclusivity         bool     `json:"exclusivity"`
	CommercialUse       bool     `json:"commercialUse"`
	ModificationRights  bool     `json:"modificationRights"`
	AttributionRequired bool     `json:"attributionRequired"`
}

// Listing is the last known ledger snapshot of an offer to sell one NFT
type Listing struct {
	ID           string           `json:"id"`
	NftID        string           `json:"nftId"`
	Seller       domain.Principal `json:"seller"`
	Price        uint64           `json:"price"` // e8s
	Currency     string           `json:"currency"`
	ListedAt     uint64           `json:"listedAt"`
	ExpiresAt    *uint64          `json:"expiresAt,omitempty"`
	Status       Status           `json:"status"`
	LicenseTerms *LicenseTerms    `json:"licenseTerms,omitempty"`
	Auction      *AuctionData     `json:"auction,omitempty"`
}

// IsAuction reports whether the listing carries auction data
func (l *Listing) IsAuction() bool {
	return l.Auction != nil
}

// Validate checks the structural invariants of a decoded snapshot
func (l *Listing) Validate() error {
	switch {
	case l.Status == StatusUnknown:
		return xerrors.Errorf("listing %s has no status: %w", l.ID, domain.ErrInvalidState)
	case l.Status == StatusInAuction && l.Auction == nil:
		return xerrors.Errorf("listing %s is InAuction without auction data: %w", l.ID, domain.ErrInvalidState)
	case l.Status == StatusActive && l.Auction != nil:
		return xerrors.Errorf("listing %s is Active with auction data: %w", l.ID, domain.ErrInvalidState)
	}
	return nil
}

// Nanos converts a wall clock instant to the ledger's ns timestamps
func Nanos(t time.Time) uint64 {
	ns := t.UnixNano()
	if ns < 0 {
		return 0
	}
	return uint64(ns)
}
