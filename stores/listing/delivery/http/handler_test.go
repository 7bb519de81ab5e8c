package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/delivery"
	"github.com/x-xyz/ipmarket/base/ptr"
	"github.com/x-xyz/ipmarket/base/validator"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
	mListing "github.com/x-xyz/ipmarket/domain/listing/mocks"
	authMiddleware "github.com/x-xyz/ipmarket/stores/auth/delivery/http/middleware"
	authUsecase "github.com/x-xyz/ipmarket/stores/auth/usecase"
)

const (
	admin = domain.Principal("rrkah-fqaaa-aaaaa-aaaaq-cai")
	alice = domain.Principal("ryjl3-tyaaa-aaaaa-aaaba-cai")
)

type handlerSuite struct {
	suite.Suite

	now  time.Time
	e    *echo.Echo
	uc   *mListing.Usecase
	auth domain.AuthUsecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.uc = mListing.NewUsecase(s.T())
	s.auth = authUsecase.New("secret", time.Hour)

	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	am := authMiddleware.New(s.auth, []string{admin.String()})
	newHandler(s.e, s.uc, am, func() time.Time { return s.now })
}

func (s *handlerSuite) do(method, path string, principal domain.Principal, body string) (int, delivery.JsonResponse) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if principal != "" {
		tkn, err := s.auth.SignToken(ctx.Background(), principal)
		s.Require().NoError(err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tkn)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	resp := delivery.JsonResponse{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec.Code, resp
}

func (s *handlerSuite) TestListActiveAnonymous() {
	cards := []listing.Card{{ID: "1"}}
	s.uc.On("ListActive", mock.Anything, domain.AnonymousPrincipal, s.now).Return(cards, nil).Once()

	code, resp := s.do(http.MethodGet, "/listings", "", "")
	s.Equal(http.StatusOK, code)
	s.Equal(delivery.JsonResponseStatusSuccess, resp.Status)
}

func (s *handlerSuite) TestGetView() {
	s.uc.On("GetView", mock.Anything, "7", alice, s.now).Return(&listing.View{}, nil).Once()
	code, _ := s.do(http.MethodGet, "/listings/7", alice, "")
	s.Equal(http.StatusOK, code)

	s.uc.On("GetView", mock.Anything, "8", domain.AnonymousPrincipal, s.now).Return(nil, domain.ErrNotFound).Once()
	code, _ = s.do(http.MethodGet, "/listings/8", "", "")
	s.Equal(http.StatusNotFound, code)

	s.uc.On("GetView", mock.Anything, "9", domain.AnonymousPrincipal, s.now).Return(nil, domain.ErrLedgerUnavailable).Once()
	code, _ = s.do(http.MethodGet, "/listings/9", "", "")
	s.Equal(http.StatusBadGateway, code)
}

func (s *handlerSuite) TestListBySeller() {
	s.uc.On("ListBySeller", mock.Anything, alice, domain.AnonymousPrincipal, s.now).Return([]listing.Card{}, nil).Once()
	code, _ := s.do(http.MethodGet, "/sellers/"+alice.String()+"/listings", "", "")
	s.Equal(http.StatusOK, code)

	code, _ = s.do(http.MethodGet, "/sellers/not-a-principal/listings", "", "")
	s.Equal(http.StatusBadRequest, code)
}

func (s *handlerSuite) TestListByNft() {
	s.uc.On("ListByNft", mock.Anything, "nft_1", alice, s.now).Return([]listing.Card{{ID: "1", NftID: "nft_1"}}, nil).Once()
	code, resp := s.do(http.MethodGet, "/nfts/nft_1/listings", alice, "")
	s.Equal(http.StatusOK, code)
	s.Len(resp.Data, 1)

	s.uc.On("ListByNft", mock.Anything, "nft_2", domain.AnonymousPrincipal, s.now).Return(nil, domain.ErrLedgerUnavailable).Once()
	code, _ = s.do(http.MethodGet, "/nfts/nft_2/listings", "", "")
	s.Equal(http.StatusBadGateway, code)
}

func (s *handlerSuite) TestBid() {
	receipt := &listing.BidReceipt{ID: "r1", Outcome: listing.BidAccepted}
	s.uc.On("PlaceBid", mock.Anything, "7", alice, listing.BidRequest{Amount: "5.1"}, s.now).Return(receipt, nil).Once()
	s.uc.On("PlaceBid", mock.Anything, "7", alice, listing.BidRequest{AmountE8s: ptr.Of(uint64(510000000))}, s.now).Return(receipt, nil).Once()

	code, _ := s.do(http.MethodPost, "/listings/7/bids", alice, `{"amount":"5.1"}`)
	s.Equal(http.StatusCreated, code)

	code, _ = s.do(http.MethodPost, "/listings/7/bids", alice, `{"amountE8s":510000000}`)
	s.Equal(http.StatusCreated, code)

	s.uc.On("PlaceBid", mock.Anything, "7", alice, listing.BidRequest{Amount: "5.123456789"}, s.now).
		Return(nil, xerrors.Errorf("too fine: %w", domain.ErrInvalidAmount)).Once()
	code, _ = s.do(http.MethodPost, "/listings/7/bids", alice, `{"amount":"5.123456789"}`)
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/listings/7/bids", alice, `{}`)
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.do(http.MethodPost, "/listings/7/bids", "", `{"amount":"5.1"}`)
	s.Contains([]int{http.StatusBadRequest, http.StatusUnauthorized}, code)
}

func (s *handlerSuite) TestBidRejected() {
	s.uc.On("PlaceBid", mock.Anything, "7", alice, listing.BidRequest{Amount: "5.05"}, s.now).Return(nil, listing.BelowMinimum).Once()

	code, resp := s.do(http.MethodPost, "/listings/7/bids", alice, `{"amount":"5.05"}`)
	s.Equal(http.StatusUnprocessableEntity, code)
	s.Equal("BelowMinimum", resp.Data)
	s.Equal(delivery.JsonResponseStatusFail, resp.Status)
}

func (s *handlerSuite) TestCreate() {
	req := listing.ListRequest{NftID: "nft_1", Price: 100000000, Currency: "ICP"}
	s.uc.On("Create", mock.Anything, alice, req).Return("listing_1", nil).Once()

	code, resp := s.do(http.MethodPost, "/listings", alice, `{"nftId":"nft_1","price":100000000,"currency":"ICP"}`)
	s.Equal(http.StatusCreated, code)
	s.Equal(map[string]interface{}{"id": "listing_1"}, resp.Data)
}

func (s *handlerSuite) TestBuyAndCancel() {
	s.uc.On("Buy", mock.Anything, "7", alice, s.now).Return(listing.NotPurchasable).Once()
	code, resp := s.do(http.MethodPost, "/listings/7/buy", alice, "")
	s.Equal(http.StatusUnprocessableEntity, code)
	s.Equal("NotPurchasable", resp.Data)

	s.uc.On("Cancel", mock.Anything, "7", alice).Return(domain.ErrUnauthorized).Once()
	code, _ = s.do(http.MethodPost, "/listings/7/cancel", alice, "")
	s.Equal(http.StatusForbidden, code)
}

func (s *handlerSuite) TestStats() {
	s.uc.On("Stats", mock.Anything).Return(&listing.StatsView{SuccessRateLabel: "N/A"}, nil).Once()
	code, _ := s.do(http.MethodGet, "/stats", "", "")
	s.Equal(http.StatusOK, code)
}

func (s *handlerSuite) TestSweepRequiresAdmin() {
	code, _ := s.do(http.MethodPost, "/admin/listings/sweep", alice, "")
	s.Equal(http.StatusForbidden, code)

	s.uc.On("SweepExpired", mock.Anything, s.now).Return(3, nil).Once()
	code, resp := s.do(http.MethodPost, "/admin/listings/sweep", admin, "")
	s.Equal(http.StatusOK, code)
	s.Equal(map[string]interface{}{"cleaned": float64(3)}, resp.Data)
}
