package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/ai"
	"jusgestor-backend-go/internal/core"
)

func TestRespondErrorMapsTheTaxonomy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: name required", core.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: tone", ai.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: not yours", core.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: client", core.ErrNotFound), http.StatusNotFound},
		{core.ErrEmailInUse, http.StatusConflict},
		{core.ErrOfficeExists, http.StatusConflict},
		{fmt.Errorf("%w: firestore", core.ErrUpstream), http.StatusBadGateway},
		{fmt.Errorf("%w: bad json", ai.ErrGenerationFailed), http.StatusBadGateway},
		{errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondError(c, zap.NewNop(), tc.err)
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
	}
}

func TestCallerUIDRequiresMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	_, ok := callerUID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Set("userID", "uid-1")
	uid, ok := callerUID(c)
	assert.True(t, ok)
	assert.Equal(t, "uid-1", uid)
}
