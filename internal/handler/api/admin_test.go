//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"secret-santa/internal/handler/api"
	resdto "secret-santa/internal/handler/dto/response"
	"secret-santa/internal/pkg/errs"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"
	commandsmock "secret-santa/tests/mock/commands"
	queriesmock "secret-santa/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockToss    *commandsmock.MockTossCommands
	mockQueries *queriesmock.MockParticipantQueries
	handler     *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockToss = commandsmock.NewMockTossCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockParticipantQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockToss, s.mockQueries)

	s.router.POST("/admin/toss", s.handler.MakeToss)
	s.router.DELETE("/admin/toss", s.handler.NullifyToss)
	s.router.GET("/admin/participants", s.handler.ListParticipants)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) perform(method, url string) *httptest.ResponseRecorder {
	s.T().Helper()

	req, err := http.NewRequest(method, url, nil)
	s.Require().NoError(err)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AdminHandlerTestSuite) TestMakeToss() {
	s.Run("success: returns 204 when the toss runs", func() {
		s.mockToss.EXPECT().MakeToss(gomock.Any()).Return(nil).Times(1)

		rec := s.perform(http.MethodPost, "/admin/toss")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when not enough participants joined", func() {
		s.mockToss.EXPECT().MakeToss(gomock.Any()).
			Return(commands.ErrNotEnoughParticipants).Times(1)

		rec := s.perform(http.MethodPost, "/admin/toss")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockToss.EXPECT().MakeToss(gomock.Any()).
			Return(errs.New("db down")).Times(1)

		rec := s.perform(http.MethodPost, "/admin/toss")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestNullifyToss() {
	s.Run("success: returns 204", func() {
		s.mockToss.EXPECT().NullifyToss(gomock.Any()).Return(nil).Times(1)

		rec := s.perform(http.MethodDelete, "/admin/toss")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestListParticipants() {
	s.Run("success: returns the roster", func() {
		items := []*queries.ParticipantListItem{
			{ID: uuid.New(), Name: "Alice", Status: "involved", TargetStatus: "gift_ready"},
			{ID: uuid.New(), Name: "Bob", Status: "refused", TargetStatus: "undefined"},
		}
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(items, nil).Times(1)

		rec := s.perform(http.MethodGet, "/admin/participants")

		s.Equal(http.StatusOK, rec.Code)
		var resp []resdto.ParticipantListItemResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Require().Len(resp, 2)
		s.Equal("Alice", resp[0].Name)
		s.Equal("gift_ready", resp[0].TargetStatus)
	})
}
