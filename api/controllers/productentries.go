package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/firstcode/wishlist-backend/api/alerts"
	"github.com/firstcode/wishlist-backend/api/responses"
	"github.com/firstcode/wishlist-backend/api/validators"
	"github.com/firstcode/wishlist-backend/internal/productentries"
	pkgerrors "github.com/firstcode/wishlist-backend/pkg/errors"
	"github.com/firstcode/wishlist-backend/pkg/logger"
)

const productEntryEntityName = "productEntry"

// ProductEntryCreate persists a new product entry. A payload that already
// carries an id is rejected with a failure alert and nothing is persisted.
func ProductEntryCreate(svc productentries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product entry service unavailable"))
			return
		}

		var dto productentries.ProductEntryDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if dto.ID != nil {
			alerts.SetFailureAlert(w.Header(), productEntryEntityName, "idexists", "A new productEntry cannot already have an ID")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		createProductEntry(w, r, svc, logg, dto)
	}
}

// ProductEntryUpdate overwrites the product entry named in the payload.
// Payloads without an id fall back to creation, matching the POST behavior.
func ProductEntryUpdate(svc productentries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product entry service unavailable"))
			return
		}

		var dto productentries.ProductEntryDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if dto.ID == nil {
			createProductEntry(w, r, svc, logg, dto)
			return
		}

		updated, err := svc.Update(ctx, dto)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if updated.ID == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "updated product entry has no id"))
			return
		}

		alerts.SetEntityUpdateAlert(w.Header(), productEntryEntityName, fmt.Sprintf("%d", *updated.ID))
		responses.WriteJSON(w, http.StatusOK, updated)
	}
}

func createProductEntry(w http.ResponseWriter, r *http.Request, svc productentries.Service, logg *logger.Logger, dto productentries.ProductEntryDTO) {
	ctx := r.Context()

	created, err := svc.Create(ctx, dto)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}
	if created.ID == nil {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "created product entry has no id"))
		return
	}

	id := fmt.Sprintf("%d", *created.ID)
	w.Header().Set("Location", "/api/product-ids/"+id)
	alerts.SetEntityCreationAlert(w.Header(), productEntryEntityName, id)
	responses.WriteJSON(w, http.StatusCreated, created)
}

// ProductEntryList returns product entries, optionally filtered to a single
// wishlist via the wishlistId query parameter.
func ProductEntryList(svc productentries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product entry service unavailable"))
			return
		}

		var (
			dtos []productentries.ProductEntryDTO
			err  error
		)
		if raw := strings.TrimSpace(r.URL.Query().Get("wishlistId")); raw != "" {
			wishlistID, parseErr := strconv.ParseInt(raw, 10, 64)
			if parseErr != nil || wishlistID <= 0 {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "wishlistId must be a positive integer"))
				return
			}
			dtos, err = svc.ListByWishlist(ctx, wishlistID)
		} else {
			dtos, err = svc.List(ctx)
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, dtos)
	}
}

// ProductEntryGet returns a single product entry or a bare 404.
func ProductEntryGet(svc productentries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product entry service unavailable"))
			return
		}

		id, err := validators.IDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Get(ctx, id)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, dto)
	}
}

// ProductEntryDelete removes a product entry, reporting success even when the
// row was already gone.
func ProductEntryDelete(svc productentries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product entry service unavailable"))
			return
		}

		id, err := validators.IDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		alerts.SetEntityDeletionAlert(w.Header(), productEntryEntityName, fmt.Sprintf("%d", id))
		w.WriteHeader(http.StatusOK)
	}
}
