package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupProfileRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryRepository()))
	r.POST("/profile", handler.Create)
	r.GET("/profile", handler.Get)

	return r
}

func postProfile(r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProfile(t *testing.T) {
	r := setupProfileRouter()

	w := postProfile(r, map[string]interface{}{
		"name": "Adama", "age": 26, "gender": "Male", "passcode": "4821",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "passcode") {
		t.Fatalf("response leaked passcode data: %s", w.Body.String())
	}
}

func TestCreateProfile_Duplicate(t *testing.T) {
	r := setupProfileRouter()
	payload := map[string]interface{}{"name": "Adama", "age": 26, "gender": "Male", "passcode": "4821"}

	postProfile(r, payload)
	w := postProfile(r, payload)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestCreateProfile_Invalid(t *testing.T) {
	r := setupProfileRouter()

	w := postProfile(r, map[string]interface{}{"age": 0, "gender": "Male", "passcode": "4821"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetProfile_Missing(t *testing.T) {
	r := setupProfileRouter()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
