package user

import (
	"io"
	"net/http"
	"net/http/httptest"
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

func upstreamResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestGetPassesBodyThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().Forward(gomock.Any(), "token-1", http.MethodGet, "/users/u2", gomock.Any(), nil).Return(
		upstreamResponse(http.StatusOK, `{"id":"u2","username":"borin","is_superuser":false}`), nil,
	)

	h := NewHandler(proxy.NewForwarder(cli))
	c, rec := authedContext(http.MethodGet, "/api/users/u2", "")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u2","username":"borin","is_superuser":false}`, rec.Body.String())
}

func TestUpdateForwardsBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var gotBody string
	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().Forward(gomock.Any(), "token-1", http.MethodPatch, "/users/u1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx any, token, method, path string, query any, body io.Reader) (*http.Response, error) {
			data, _ := io.ReadAll(body)
			gotBody = string(data)
			return upstreamResponse(http.StatusOK, `{"id":"u1","username":"aria"}`), nil
		},
	)

	h := NewHandler(proxy.NewForwarder(cli))
	c, rec := authedContext(http.MethodPatch, "/api/users/u1", `{"username":"aria"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"aria"}`, gotBody)
}

func TestDeleteAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().Forward(gomock.Any(), "token-1", http.MethodDelete, "/users/u1", gomock.Any(), nil).Return(
		upstreamResponse(http.StatusNoContent, ""), nil,
	)

	h := NewHandler(proxy.NewForwarder(cli))
	c, rec := authedContext(http.MethodDelete, "/api/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())
}

func TestUpstreamErrorRelayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().Forward(gomock.Any(), "token-1", http.MethodGet, "/users/missing", gomock.Any(), nil).Return(
		upstreamResponse(http.StatusNotFound, "no such user"), nil,
	)

	h := NewHandler(proxy.NewForwarder(cli))
	c, rec := authedContext(http.MethodGet, "/api/users/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch user","details":"no such user"}`, rec.Body.String())
}
