package beneficiary_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KAsare1/donation-server/db/dbtest"
	"github.com/KAsare1/donation-server/service/beneficiary"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	router := mux.NewRouter()
	beneficiary.NewBeneficiaryHandler(dbtest.Open(t), zerolog.Nop()).RegisterRoutes(router)
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

func TestCreateBeneficiaryWithOnlyName(t *testing.T) {
	router := newRouter(t)

	rr, res := do(t, router, "POST", "/beneficiaries/", `{"name": "Kofi"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if res["name"] != "Kofi" || res["campaign_id"] != nil {
		t.Errorf("unexpected beneficiary %v", res)
	}
}

func TestCreateBeneficiaryRequiresName(t *testing.T) {
	router := newRouter(t)

	rr, _ := do(t, router, "POST", "/beneficiaries", `{"contact": "0244"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
}

func TestCreateBeneficiaryMalformedBody(t *testing.T) {
	router := newRouter(t)

	rr, res := do(t, router, "POST", "/beneficiaries/", `{"name": 12}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
	if _, ok := res["detail"].(string); !ok {
		t.Errorf("detail = %v", res["detail"])
	}
}

func TestUpdateBeneficiaryDetachesCampaign(t *testing.T) {
	router := newRouter(t)
	do(t, router, "POST", "/beneficiaries/", `{"name": "Kofi", "needs": "school fees", "campaign_id": 4}`)

	rr, res := do(t, router, "PUT", "/beneficiaries/1", `{"campaign_id": null}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rr.Code, res)
	}
	if res["campaign_id"] != nil {
		t.Errorf("campaign_id = %v, want null", res["campaign_id"])
	}
	if res["needs"] != "school fees" {
		t.Errorf("needs changed: %v", res["needs"])
	}
}

func TestBeneficiaryLifecycle(t *testing.T) {
	router := newRouter(t)

	if rr, res := do(t, router, "GET", "/beneficiaries/1/", ""); rr.Code != http.StatusNotFound || res["detail"] != "Beneficiary not found" {
		t.Fatalf("get missing: %d %v", rr.Code, res)
	}

	do(t, router, "POST", "/beneficiaries/", `{"name": "Kofi", "address": "Accra"}`)

	rr, res := do(t, router, "GET", "/beneficiaries/1", "")
	if rr.Code != http.StatusOK || res["address"] != "Accra" {
		t.Fatalf("get: %d %v", rr.Code, res)
	}

	rr, res = do(t, router, "DELETE", "/beneficiaries/1", "")
	if rr.Code != http.StatusOK || res["detail"] != "Beneficiary deleted successfully" {
		t.Fatalf("delete: %d %v", rr.Code, res)
	}

	if rr, _ := do(t, router, "DELETE", "/beneficiaries/1", ""); rr.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rr.Code)
	}
	if rr, res := do(t, router, "PUT", "/beneficiaries/x", `{}`); rr.Code != http.StatusUnprocessableEntity || res["detail"] != "Invalid beneficiary ID" {
		t.Errorf("invalid id: %d %v", rr.Code, res)
	}
}
