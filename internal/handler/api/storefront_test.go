//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"roomcart/internal/handler/api"
	resdto "roomcart/internal/handler/dto/response"
	"roomcart/internal/infra"
	"roomcart/internal/usecase/queries"
	"roomcart/tests/common/httptest"
	queriesmock "roomcart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StorefrontHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStorefrontQueries
	handler     *api.StorefrontHandler
}

func (s *StorefrontHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStorefrontQueries(s.mockCtrl)
	s.handler = api.NewStorefrontHandler(s.mockQueries)

	s.router.GET("/api/storefront/:slug", s.handler.GetStorefront)
}

func (s *StorefrontHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStorefrontHandlerSuite(t *testing.T) {
	suite.Run(t, new(StorefrontHandlerTestSuite))
}

func (s *StorefrontHandlerTestSuite) TestGetStorefront() {
	s.Run("returns 200 with branding and catalog", func() {
		view := &queries.StorefrontView{
			Hotel: queries.HotelView{
				ID:         uuid.New(),
				Name:       "Seaside Resort",
				Slug:       "seaside-abc123",
				Currency:   "USD",
				ThemeColor: "#1f2937",
			},
			Products: []*queries.ProductView{
				{ID: uuid.New(), Name: "Club Sandwich", Price: decimal.NewFromFloat(9.90), InStock: true},
				{ID: uuid.New(), Name: "Bottled Water", Price: decimal.NewFromFloat(2.50), InStock: true},
			},
		}
		s.mockQueries.EXPECT().
			GetBySlug(gomock.Any(), "seaside-abc123").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/storefront/seaside-abc123", nil)

		var response resdto.StorefrontResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal("Seaside Resort", response.Hotel.Name)
		s.Len(response.Products, 2)
	})

	s.Run("returns 404 for an unknown slug", func() {
		s.mockQueries.EXPECT().
			GetBySlug(gomock.Any(), "nowhere").
			Return(nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/storefront/nowhere", nil)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Hotel not found")
	})
}
