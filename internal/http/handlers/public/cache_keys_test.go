package public

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func listRequestContext(t *testing.T, target, acceptLanguage string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestListCacheVariantKeyedByResolvedLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	en := listCacheVariant(listRequestContext(t, "/news?search=park", "en-US"))
	el := listCacheVariant(listRequestContext(t, "/news?search=park", "el-GR"))
	if en == el {
		t.Fatalf("same query under different languages must not share a cache entry, both got %q", en)
	}
	if en != "en:search=park" || el != "el:search=park" {
		t.Fatalf("variant want locale-prefixed query, got %q and %q", en, el)
	}
}

func TestListCacheVariantQueryLocaleWinsOverHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	got := listCacheVariant(listRequestContext(t, "/news?lang=el", "en-US"))
	if got != "el:lang=el" {
		t.Fatalf("lang query takes precedence, got %q", got)
	}
}

func TestListCacheVariantBareRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	got := listCacheVariant(listRequestContext(t, "/news", ""))
	if got != "en:default" {
		t.Fatalf("bare request want en:default got %q", got)
	}
}
