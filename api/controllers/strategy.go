package controllers

import (
	"net/http"

	"github.com/lamnguyen-dev/tilecat-backend/api/responses"
	"github.com/lamnguyen-dev/tilecat-backend/api/validators"
	"github.com/lamnguyen-dev/tilecat-backend/internal/products"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/logger"
)

// PreviewStrategy runs the pricing cascade on submitted inputs without
// persisting anything; the dashboard calls it as the user types.
func PreviewStrategy(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload products.StrategyInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := svc.PreviewStrategy(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, out)
	}
}
