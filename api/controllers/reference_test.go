package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lamnguyen-dev/tilecat-backend/internal/catalog"
	"github.com/lamnguyen-dev/tilecat-backend/internal/derive"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
)

type stubCatalogService struct {
	lists map[string]any
}

func (s *stubCatalogService) List(_ context.Context, name string) (any, error) {
	if data, ok := s.lists[name]; ok {
		return data, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown reference list")
}

func (s *stubCatalogService) Tables(context.Context) (*derive.Tables, error) {
	return derive.NewTables(), nil
}

func (s *stubCatalogService) Invalidate(context.Context) error { return nil }

func withListParam(req *http.Request, name string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("list", name)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	return req.WithContext(ctx)
}

func TestGetReferenceList(t *testing.T) {
	stub := &stubCatalogService{lists: map[string]any{
		catalog.ListSuppliers: []catalog.SupplierDTO{{ID: 1, Name: "HCM Distributor 5", ShortCode: "HCMD5"}},
	}}

	req := withListParam(httptest.NewRequest(http.MethodGet, "/api/v1/reference/suppliers", nil), catalog.ListSuppliers)
	rec := httptest.NewRecorder()
	GetReferenceList(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data []catalog.SupplierDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ShortCode != "HCMD5" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGetReferenceListUnknown(t *testing.T) {
	req := withListParam(httptest.NewRequest(http.MethodGet, "/api/v1/reference/bogus", nil), "bogus")
	rec := httptest.NewRecorder()
	GetReferenceList(&stubCatalogService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
