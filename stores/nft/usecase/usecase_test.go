package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/keys"
	"github.com/x-xyz/ipmarket/domain/nft"
	mNft "github.com/x-xyz/ipmarket/domain/nft/mocks"
	"github.com/x-xyz/ipmarket/service/cache"
	"github.com/x-xyz/ipmarket/service/cache/provider/primitive"
	"github.com/x-xyz/ipmarket/stores/nft/usecase"
)

type nftSuite struct {
	suite.Suite

	ledger *mNft.Ledger
	im     nft.Usecase
}

func TestNftSuite(t *testing.T) {
	suite.Run(t, new(nftSuite))
}

func (s *nftSuite) SetupTest() {
	s.ledger = mNft.NewLedger(s.T())
	s.im = usecase.New(s.ledger, cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxNftMetadata,
		Cache: primitive.NewPrimitive("nft-test", 1),
	}))
}

func (s *nftSuite) TestMetadataIsCached() {
	meta := &nft.Metadata{TokenID: "7", Name: "Sunrise", IpCategory: "art", MintedDate: "2024-01-02"}
	s.ledger.On("GetNftMetadata", mock.Anything, "7").Return(meta, nil).Once()

	for i := 0; i < 3; i++ {
		res, err := s.im.Metadata(ctx.Background(), "7")
		s.Require().NoError(err)
		s.Equal(meta, res)
	}
}

func (s *nftSuite) TestMetadataNotFoundIsNotCached() {
	s.ledger.On("GetNftMetadata", mock.Anything, "8").Return(nil, domain.ErrNotFound).Twice()

	for i := 0; i < 2; i++ {
		_, err := s.im.Metadata(ctx.Background(), "8")
		s.ErrorIs(err, domain.ErrNotFound)
	}
}

func (s *nftSuite) TestGetIsNotCached() {
	n := &nft.NFT{ID: "7", TokenID: 7, Owner: "ryjl3-tyaaa-aaaaa-aaaba-cai"}
	s.ledger.On("GetNft", mock.Anything, "7").Return(n, nil).Twice()

	for i := 0; i < 2; i++ {
		res, err := s.im.Get(ctx.Background(), "7")
		s.Require().NoError(err)
		s.Equal(n, res)
	}
}
