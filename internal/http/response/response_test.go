package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
	"github.com/support371/Asset-Packet/internal/platform/apierr"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondAPIError(c, logger.Nop(), err)
	return rec
}

func TestRespondAPIError(t *testing.T) {
	rec := respond(fmt.Errorf("packet 9: %w", pkgerrors.ErrNotFound))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"packet 9: not found","code":"not_found"}`, rec.Body.String())

	rec = respond(fmt.Errorf("%w: title is required", pkgerrors.ErrInvalidArgument))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"invalid argument: title is required","code":"invalid_argument"}`, rec.Body.String())

	rec = respond(errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"internal error","code":"internal"}`, rec.Body.String())
}

func TestRespondAPIErrorKeepsExplicitErrors(t *testing.T) {
	rec := respond(apierr.NotFound("packet not found"))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"packet not found","code":"not_found"}`, rec.Body.String())

	rec = respond(apierr.Forbidden("Forbidden"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"message":"Forbidden","code":"forbidden"}`, rec.Body.String())

	rec = respond(apierr.BadRequest(errors.New("invalid request body: EOF")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"invalid request body: EOF","code":"invalid_argument"}`, rec.Body.String())
}
