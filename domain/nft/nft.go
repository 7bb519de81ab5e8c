package nft

import (
	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
)

type NFT struct {
	ID                string           `json:"id"`
	IpID              string           `json:"ipId"`
	TokenID           uint64           `json:"tokenId"`
	Owner             domain.Principal `json:"owner"`
	Creator           domain.Principal `json:"creator"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Image             string           `json:"image"`
	RoyaltyPercentage uint8            `json:"royaltyPercentage"`
	IsTransferable    bool             `json:"isTransferable"`
	MintedAt          uint64           `json:"mintedAt"`
	CollectionName    *string          `json:"collectionName,omitempty"`
}

// Metadata never changes once the NFT is minted
type Metadata struct {
	TokenID     string  `json:"tokenId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ExternalURL *string `json:"externalUrl,omitempty"`
	IpCategory  string  `json:"ipCategory"`
	IpType      string  `json:"ipType"`
	Creator     string  `json:"creator"`
	LicenseType *string `json:"licenseType,omitempty"`
	MintedDate  string  `json:"mintedDate"`
}

// Ledger is the subset of the marketplace ledger serving NFT records
type Ledger interface {
	GetNft(ctx ctx.Ctx, id string) (*NFT, error)
	GetNftMetadata(ctx ctx.Ctx, id string) (*Metadata, error)
}

type Usecase interface {
	Get(ctx ctx.Ctx, id string) (*NFT, error)
	Metadata(ctx ctx.Ctx, id string) (*Metadata, error)
}
