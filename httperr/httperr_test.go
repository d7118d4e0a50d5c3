package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err)
	return w
}

func TestRespondStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidCredential, http.StatusUnauthorized},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindInvalidInput, http.StatusBadRequest},
		{KindUpstreamFailure, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if w := record(New(tc.kind, "boom")); w.Code != tc.want {
			t.Errorf("kind %d -> status %d, want %d", tc.kind, w.Code, tc.want)
		}
	}
}

func TestRespondUntaggedError(t *testing.T) {
	w := record(errors.New("database on fire"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUpstreamFailure, "failed to fetch products", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if err.Error() != "failed to fetch products" {
		t.Errorf("message = %q", err.Error())
	}
}
