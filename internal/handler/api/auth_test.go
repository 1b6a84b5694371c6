//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"secret-santa/internal/domain/participant"
	"secret-santa/internal/handler/api"
	reqdto "secret-santa/internal/handler/dto/request"
	resdto "secret-santa/internal/handler/dto/response"
	"secret-santa/internal/pkg/jwt"
	"secret-santa/internal/usecase/commands"
	"secret-santa/internal/usecase/queries"
	commandsmock "secret-santa/tests/mock/commands"
	queriesmock "secret-santa/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockParticipantQueries
	handler      *api.AuthHandler
	authedID     uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockParticipantQueries(s.mockCtrl)
	tokens := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, tokens)
	s.authedID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("participant_id", s.authedID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) perform(method, url string, body any, token string) *httptest.ResponseRecorder {
	s.T().Helper()

	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	p, err := participant.New("Alice", "alice@example.com", "hash", false)
	s.Require().NoError(err)
	view := &queries.ParticipantView{ID: p.ID(), Name: "Alice", Email: "alice@example.com", Status: "expected_to_choose"}

	s.Run("success: returns 200 OK with a token for a valid access key", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "santa-key").Return(p, nil).Times(1)
		s.mockQueries.EXPECT().GetMe(gomock.Any(), p.ID()).Return(view, nil).Times(1)

		rec := s.perform(http.MethodPost, url, reqdto.LoginRequest{AccessKey: "santa-key"}, "")

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.LoginResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.NotEmpty(resp.AccessToken)
		s.Equal("Alice", resp.Participant.Name)
	})

	s.Run("error: 401 Unauthorized for an unknown access key", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), "wrong-key").
			Return(nil, commands.ErrInvalidAccessKey).Times(1)

		rec := s.perform(http.MethodPost, url, reqdto.LoginRequest{AccessKey: "wrong-key"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 Bad Request for a missing access key", func() {
		rec := s.perform(http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated participant", func() {
		view := &queries.ParticipantView{ID: s.authedID, Name: "Alice", Status: "involved"}
		s.mockQueries.EXPECT().GetMe(gomock.Any(), s.authedID).Return(view, nil).Times(1)

		rec := s.perform(http.MethodGet, url, nil, "some-token")

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.ParticipantResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("involved", resp.Status)
	})

	s.Run("error: 401 without authentication", func() {
		rec := s.perform(http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 404 when the participant is gone", func() {
		s.mockQueries.EXPECT().GetMe(gomock.Any(), s.authedID).
			Return(nil, queries.ErrParticipantNotFound).Times(1)

		rec := s.perform(http.MethodGet, url, nil, "some-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
