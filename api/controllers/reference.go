package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamnguyen-dev/tilecat-backend/api/responses"
	"github.com/lamnguyen-dev/tilecat-backend/internal/catalog"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/logger"
)

// GetReferenceList serves one of the twelve dropdown lists.
func GetReferenceList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		name := chi.URLParam(r, "list")
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithReferenceList(ctx, name)
		}

		data, err := svc.List(ctx, name)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, data)
	}
}
