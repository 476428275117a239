package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"slug": "town-hall"})
	body := decodeEnvelope(t, w)
	if body.StatusCode != CodeOK || body.Msg != "success" {
		t.Fatalf("success envelope mismatch: %+v", body)
	}
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		fn   func(*gin.Context, string)
		want int
	}{
		{"bad request", BadRequest, CodeBadRequest},
		{"unauthorized", Unauthorized, CodeUnauthorized},
		{"forbidden", Forbidden, CodeForbidden},
		{"not found", NotFound, CodeNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		tc.fn(c, "nope")
		body := decodeEnvelope(t, w)
		if body.StatusCode != tc.want || body.Msg != "nope" {
			t.Fatalf("%s: want code %d got %+v", tc.name, tc.want, body)
		}
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-42")

	Error(c, CodeInternal, "boom")
	body := decodeEnvelope(t, w)
	data, ok := body.Data.(map[string]interface{})
	if !ok || data["request_id"] != "req-42" {
		t.Fatalf("error data must carry the request id, got %v", body.Data)
	}
}
