package conversation

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/characterhub/characterhub/client/mock"
	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/x/auth"
	"github.com/characterhub/characterhub/x/proxy"
)

func authedContext(method string, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(auth.CredentialCtxKey, auth.Credential{Token: "token-1", User: core.User{ID: "u1"}})
	return c, rec
}

func TestAddParticipantMissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Forward expectation: validation fails before any upstream contact
	cli := mock_client.NewMockClient(ctrl)
	h := NewHandler(proxy.NewForwarder(cli))

	for _, body := range []string{`{}`, `{"participant_id":""}`, `{"other":"x"}`} {
		c, rec := authedContext(http.MethodPost, "/api/conversations/v1/participants", body)
		c.SetParamNames("id")
		c.SetParamValues("v1")

		assert.NoError(t, h.AddParticipant(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing participant_id"}`, rec.Body.String())
	}
}

func TestAddParticipantForwardsOnlyParticipantID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var forwarded string
	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().Forward(gomock.Any(), "token-1", http.MethodPost, "/conversations/v1/participants", gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx any, token, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
			data, _ := io.ReadAll(body)
			forwarded = string(data)
			return &http.Response{
				StatusCode: http.StatusCreated,
				Body:       io.NopCloser(strings.NewReader(`{"participant":{"id":"p1"}}`)),
			}, nil
		},
	)

	h := NewHandler(proxy.NewForwarder(cli))
	c, rec := authedContext(http.MethodPost, "/api/conversations/v1/participants", `{"participant_id":"ch-9","extra":"dropped"}`)
	c.SetParamNames("id")
	c.SetParamValues("v1")

	assert.NoError(t, h.AddParticipant(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	// unknown fields from the caller are not replayed upstream
	assert.JSONEq(t, `{"participant_id":"ch-9"}`, forwarded)
}

func TestListParticipants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().Forward(gomock.Any(), "token-1", http.MethodGet, "/conversations/v1/participants", gomock.Any(), nil).Return(
		&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"participants":[]}`)),
		}, nil,
	)

	h := NewHandler(proxy.NewForwarder(cli))
	c, rec := authedContext(http.MethodGet, "/api/conversations/v1/participants", "")
	c.SetParamNames("id")
	c.SetParamValues("v1")

	assert.NoError(t, h.ListParticipants(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"participants":[]}`, rec.Body.String())
}
