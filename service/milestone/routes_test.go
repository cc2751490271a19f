package milestone_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KAsare1/donation-server/db/dbtest"
	"github.com/KAsare1/donation-server/service/milestone"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const milestoneBody = `{"campaign_id": 1, "title": "First well", "target_amount": 1500, "due_date": "2024-05-15"}`

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	router := mux.NewRouter()
	milestone.NewMilestoneHandler(dbtest.Open(t), zerolog.Nop()).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, bytes.NewBufferString(body)))

	var res map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode %s %s response %q: %v", method, path, rr.Body, err)
	}
	return rr, res
}

func TestCreateMilestoneDefaults(t *testing.T) {
	router := newRouter(t)

	rr, res := do(t, router, "POST", "/milestones/", milestoneBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if res["achieved"] != false || res["description"] != "" {
		t.Errorf("unexpected defaults %v", res)
	}
}

func TestMarkMilestoneAchieved(t *testing.T) {
	router := newRouter(t)
	do(t, router, "POST", "/milestones/", milestoneBody)

	rr, res := do(t, router, "PUT", "/milestones/1", `{"achieved": true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if res["achieved"] != true || res["title"] != "First well" || res["due_date"] != "2024-05-15" {
		t.Errorf("unexpected milestone %v", res)
	}

	rr, res = do(t, router, "PUT", "/milestones/1", `{"achieved": false}`)
	if rr.Code != http.StatusOK || res["achieved"] != false {
		t.Errorf("reset achieved: %d %v", rr.Code, res)
	}
}

func TestUpdateMilestoneBadDate(t *testing.T) {
	router := newRouter(t)
	do(t, router, "POST", "/milestones/", milestoneBody)

	rr, _ := do(t, router, "PUT", "/milestones/1", `{"due_date": "15/05/2024"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
}

func TestMilestoneLifecycle(t *testing.T) {
	router := newRouter(t)

	if rr, res := do(t, router, "GET", "/milestones/1", ""); rr.Code != http.StatusNotFound || res["detail"] != "Milestone not found" {
		t.Fatalf("get missing: %d %v", rr.Code, res)
	}

	do(t, router, "POST", "/milestones", milestoneBody)

	if rr, res := do(t, router, "GET", "/milestones/1/", ""); rr.Code != http.StatusOK || res["target_amount"] != float64(1500) {
		t.Fatalf("get: %d %v", rr.Code, res)
	}

	rr, res := do(t, router, "DELETE", "/milestones/1", "")
	if rr.Code != http.StatusOK || res["detail"] != "Milestone deleted successfully" {
		t.Fatalf("delete: %d %v", rr.Code, res)
	}
	if rr, _ := do(t, router, "GET", "/milestones/1", ""); rr.Code != http.StatusNotFound {
		t.Errorf("after delete: expected 404, got %d", rr.Code)
	}
}
