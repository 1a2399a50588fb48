package controllers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/firstcode/wishlist-backend/api/alerts"
	"github.com/firstcode/wishlist-backend/api/middleware"
	"github.com/firstcode/wishlist-backend/api/responses"
	"github.com/firstcode/wishlist-backend/api/validators"
	"github.com/firstcode/wishlist-backend/internal/wishlists"
	pkgerrors "github.com/firstcode/wishlist-backend/pkg/errors"
	"github.com/firstcode/wishlist-backend/pkg/logger"
)

const wishlistEntityName = "wishlist"

func actorID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid actor id")
	}
	return id, nil
}

// WishlistCreate persists a new wishlist for the acting user. A payload that
// already carries an id is rejected with a failure alert and nothing is
// persisted.
func WishlistCreate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		var dto wishlists.WishlistDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if dto.ID != nil {
			alerts.SetFailureAlert(w.Header(), wishlistEntityName, "idexists", "A new wishlist cannot already have an ID")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		createWishlist(w, r, svc, logg, dto)
	}
}

// WishlistUpdate overwrites the wishlist named in the payload. Payloads
// without an id fall back to creation, matching the POST behavior.
func WishlistUpdate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		var dto wishlists.WishlistDTO
		if err := validators.DecodeJSONBody(r, &dto); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if dto.ID == nil {
			createWishlist(w, r, svc, logg, dto)
			return
		}

		actor, err := actorID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		updated, err := svc.Update(ctx, actor, dto)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if updated.ID == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "updated wishlist has no id"))
			return
		}

		alerts.SetEntityUpdateAlert(w.Header(), wishlistEntityName, fmt.Sprintf("%d", *updated.ID))
		responses.WriteJSON(w, http.StatusOK, updated)
	}
}

func createWishlist(w http.ResponseWriter, r *http.Request, svc wishlists.Service, logg *logger.Logger, dto wishlists.WishlistDTO) {
	ctx := r.Context()

	actor, err := actorID(r)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}

	created, err := svc.Create(ctx, actor, dto)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}
	if created.ID == nil {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "created wishlist has no id"))
		return
	}

	id := fmt.Sprintf("%d", *created.ID)
	w.Header().Set("Location", "/api/wishlists/"+id)
	alerts.SetEntityCreationAlert(w.Header(), wishlistEntityName, id)
	responses.WriteJSON(w, http.StatusCreated, created)
}

// WishlistList returns every wishlist owned by the acting user.
func WishlistList(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		actor, err := actorID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dtos, err := svc.ListForUser(ctx, actor)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, dtos)
	}
}

// WishlistGet returns a single wishlist. A missing row yields a bare 404
// with no body and no alert headers.
func WishlistGet(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
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

// WishlistDelete removes a wishlist. Deleting a row that is already gone
// still reports success.
func WishlistDelete(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
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

		alerts.SetEntityDeletionAlert(w.Header(), wishlistEntityName, fmt.Sprintf("%d", id))
		w.WriteHeader(http.StatusOK)
	}
}
