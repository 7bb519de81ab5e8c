package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
	"github.com/x-xyz/ipmarket/service/query"
	mQuery "github.com/x-xyz/ipmarket/service/query/mocks"
)

const alice = domain.Principal("ryjl3-tyaaa-aaaaa-aaaba-cai")

type bidReceiptSuite struct {
	suite.Suite

	q  *mQuery.Mongo
	im listing.BidReceiptRepo
}

func TestBidReceiptSuite(t *testing.T) {
	suite.Run(t, new(bidReceiptSuite))
}

func (s *bidReceiptSuite) SetupTest() {
	s.q = mQuery.NewMongo(s.T())
	s.im = NewBidReceiptRepo(s.q)
}

func (s *bidReceiptSuite) TestInsertAssignsID() {
	r := &listing.BidReceipt{ListingID: "1", Bidder: alice, Amount: 510000000, SubmittedAt: time.Unix(100, 0), Outcome: listing.BidAccepted}
	s.q.On("Insert", mock.Anything, domain.TableBidReceipts, r).Return(nil).Once()
	s.Require().NoError(s.im.Insert(ctx.Background(), r))
	s.NotEmpty(r.ID)

	fail := errors.New("write failed")
	keep := &listing.BidReceipt{ID: "fixed", ListingID: "1"}
	s.q.On("Insert", mock.Anything, domain.TableBidReceipts, keep).Return(fail).Once()
	s.ErrorIs(s.im.Insert(ctx.Background(), keep), fail)
	s.Equal("fixed", keep.ID)
}

func (s *bidReceiptSuite) TestFindAll() {
	want := []listing.BidReceipt{{ID: "b", ListingID: "7", Bidder: alice, Amount: 2}}
	fill := func(args mock.Arguments) {
		*args.Get(6).(*[]listing.BidReceipt) = want
	}

	s.q.On("Search", mock.Anything, domain.TableBidReceipts, 0, defaultReceiptLimit, "-submittedAt",
		bson.M{"listingId": "7"}, mock.Anything).Return(nil).Run(fill).Once()
	res, err := s.im.FindAll(ctx.Background(), "7")
	s.Require().NoError(err)
	s.Equal(want, res)

	s.q.On("Search", mock.Anything, domain.TableBidReceipts, 0, 5, "-submittedAt",
		bson.M{"listingId": "7", "bidder": alice}, mock.Anything).Return(nil).Run(fill).Once()
	res, err = s.im.FindAll(ctx.Background(), "7", listing.WithBidder(alice), listing.WithLimit(5))
	s.Require().NoError(err)
	s.Equal(want, res)

	_, err = s.im.FindAll(ctx.Background(), "7", listing.WithLimit(0))
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *bidReceiptSuite) TestCount() {
	s.q.On("Count", mock.Anything, domain.TableBidReceipts, bson.M{"listingId": "7"}).Return(3, nil).Once()
	n, err := s.im.Count(ctx.Background(), "7")
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *bidReceiptSuite) TestEnsureIndexes() {
	s.q.On("EnsureIndexes", mock.Anything, domain.TableBidReceipts,
		query.Index{Keys: []string{"id"}, Unique: true},
		query.Index{Keys: []string{"listingId", "-submittedAt"}},
		query.Index{Keys: []string{"listingId", "bidder", "-submittedAt"}},
	).Return(nil).Once()
	s.NoError(EnsureIndexes(ctx.Background(), s.q))
}
