package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/firstcode/wishlist-backend/api/alerts"
	"github.com/firstcode/wishlist-backend/api/middleware"
	"github.com/firstcode/wishlist-backend/internal/wishlists"
	pkgerrors "github.com/firstcode/wishlist-backend/pkg/errors"
)

type stubWishlistService struct {
	created   *wishlists.WishlistDTO
	updated   *wishlists.WishlistDTO
	got       *wishlists.WishlistDTO
	list      []wishlists.WishlistDTO
	err       error
	deleted   []int64
	createdBy uuid.UUID
}

func (s *stubWishlistService) Create(ctx context.Context, userID uuid.UUID, dto wishlists.WishlistDTO) (wishlists.WishlistDTO, error) {
	s.createdBy = userID
	if s.err != nil {
		return wishlists.WishlistDTO{}, s.err
	}
	return *s.created, nil
}

func (s *stubWishlistService) Update(ctx context.Context, userID uuid.UUID, dto wishlists.WishlistDTO) (wishlists.WishlistDTO, error) {
	if s.err != nil {
		return wishlists.WishlistDTO{}, s.err
	}
	return *s.updated, nil
}

func (s *stubWishlistService) Get(ctx context.Context, id int64) (wishlists.WishlistDTO, error) {
	if s.err != nil {
		return wishlists.WishlistDTO{}, s.err
	}
	return *s.got, nil
}

func (s *stubWishlistService) ListForUser(ctx context.Context, userID uuid.UUID) ([]wishlists.WishlistDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubWishlistService) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func wishlistDTO(id int64, name string) wishlists.WishlistDTO {
	return wishlists.WishlistDTO{ID: &id, Name: &name}
}

func withActor(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func withIDParam(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestWishlistCreateNilIDResult(t *testing.T) {
	svc := &stubWishlistService{created: &wishlists.WishlistDTO{}}
	handler := WishlistCreate(svc, nil)

	req := withActor(httptest.NewRequest(http.MethodPost, "/api/wishlists", strings.NewReader(`{"name":"groceries"}`)), uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestWishlistUpdateNilIDResult(t *testing.T) {
	svc := &stubWishlistService{updated: &wishlists.WishlistDTO{}}
	handler := WishlistUpdate(svc, nil)

	req := withActor(httptest.NewRequest(http.MethodPut, "/api/wishlists", strings.NewReader(`{"id":7,"name":"groceries"}`)), uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestWishlistCreateSuccess(t *testing.T) {
	dto := wishlistDTO(7, "groceries")
	svc := &stubWishlistService{created: &dto}
	handler := WishlistCreate(svc, nil)

	actor := uuid.New()
	req := withActor(httptest.NewRequest(http.MethodPost, "/api/wishlists", strings.NewReader(`{"name":"groceries"}`)), actor)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/api/wishlists/7" {
		t.Fatalf("unexpected location header: %q", got)
	}
	if got := resp.Header().Get(alerts.AlertHeader); got != "firstcode.wishlist.created" {
		t.Fatalf("unexpected alert header: %q", got)
	}
	if got := resp.Header().Get(alerts.ParamsHeader); got != "7" {
		t.Fatalf("unexpected params header: %q", got)
	}
	if svc.createdBy != actor {
		t.Fatalf("expected create scoped to actor %s, got %s", actor, svc.createdBy)
	}

	var body wishlists.WishlistDTO
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID == nil || *body.ID != 7 {
		t.Fatalf("unexpected body id: %v", body.ID)
	}
}

func TestWishlistCreateRejectsExistingID(t *testing.T) {
	svc := &stubWishlistService{created: &wishlists.WishlistDTO{}}
	handler := WishlistCreate(svc, nil)

	req := withActor(httptest.NewRequest(http.MethodPost, "/api/wishlists", strings.NewReader(`{"id":5,"name":"dup"}`)), uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if got := resp.Header().Get(alerts.ErrorHeader); got != "error.idexists" {
		t.Fatalf("unexpected error header: %q", got)
	}
	if got := resp.Header().Get(alerts.ParamsHeader); got != "wishlist" {
		t.Fatalf("unexpected params header: %q", got)
	}
	if got := resp.Header().Get(alerts.MessageHeader); got != "A new wishlist cannot already have an ID" {
		t.Fatalf("unexpected message header: %q", got)
	}
	if svc.createdBy != uuid.Nil {
		t.Fatalf("expected no create call")
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", resp.Body.String())
	}
}

func TestWishlistCreateRequiresActor(t *testing.T) {
	dto := wishlistDTO(1, "x")
	handler := WishlistCreate(&stubWishlistService{created: &dto}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/wishlists", strings.NewReader(`{"name":"x"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestWishlistUpdateSuccess(t *testing.T) {
	dto := wishlistDTO(4, "renamed")
	handler := WishlistUpdate(&stubWishlistService{updated: &dto}, nil)

	req := withActor(httptest.NewRequest(http.MethodPut, "/api/wishlists", strings.NewReader(`{"id":4,"name":"renamed"}`)), uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get(alerts.AlertHeader); got != "firstcode.wishlist.updated" {
		t.Fatalf("unexpected alert header: %q", got)
	}
}

func TestWishlistUpdateWithoutIDCreates(t *testing.T) {
	dto := wishlistDTO(11, "fresh")
	svc := &stubWishlistService{created: &dto}
	handler := WishlistUpdate(svc, nil)

	req := withActor(httptest.NewRequest(http.MethodPut, "/api/wishlists", strings.NewReader(`{"name":"fresh"}`)), uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if got := resp.Header().Get(alerts.AlertHeader); got != "firstcode.wishlist.created" {
		t.Fatalf("unexpected alert header: %q", got)
	}
}

func TestWishlistListReturnsArray(t *testing.T) {
	handler := WishlistList(&stubWishlistService{list: []wishlists.WishlistDTO{wishlistDTO(1, "a"), wishlistDTO(2, "b")}}, nil)

	req := withActor(httptest.NewRequest(http.MethodGet, "/api/wishlists", nil), uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body []wishlists.WishlistDTO
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 wishlists, got %d", len(body))
	}
}

func TestWishlistGetNotFound(t *testing.T) {
	handler := WishlistGet(&stubWishlistService{err: pkgerrors.New(pkgerrors.CodeNotFound, "wishlist not found")}, nil)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/wishlists/99", nil), "99")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", resp.Body.String())
	}
	if got := resp.Header().Get(alerts.ErrorHeader); got != "" {
		t.Fatalf("expected no alert headers, got %q", got)
	}
}

func TestWishlistGetInvalidID(t *testing.T) {
	dto := wishlistDTO(1, "x")
	handler := WishlistGet(&stubWishlistService{got: &dto}, nil)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/wishlists/abc", nil), "abc")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestWishlistDeleteIdempotent(t *testing.T) {
	svc := &stubWishlistService{}
	handler := WishlistDelete(svc, nil)

	req := withIDParam(httptest.NewRequest(http.MethodDelete, "/api/wishlists/3", nil), "3")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get(alerts.AlertHeader); got != "firstcode.wishlist.deleted" {
		t.Fatalf("unexpected alert header: %q", got)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != 3 {
		t.Fatalf("expected delete of id 3, got %v", svc.deleted)
	}
}
