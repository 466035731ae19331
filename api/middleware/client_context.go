package middleware

import (
	"net/http"
	"strings"

	"github.com/mesafina/mesafina-backend/pkg/logger"
)

const (
	customerRefHeader = "X-Customer-Ref"
	channelHeader     = "X-Channel"
)

// ClientContext lifts the caller's customer reference and channel from
// request headers into the context. There is no authentication surface;
// the engine trusts the conversational frontend that fronts it.
func ClientContext(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if ref := strings.TrimSpace(r.Header.Get(customerRefHeader)); ref != "" {
				ctx = WithCustomerRef(ctx, ref)
				if logg != nil {
					ctx = logg.WithCustomerRef(ctx, ref)
				}
			}
			if channel := strings.TrimSpace(r.Header.Get(channelHeader)); channel != "" {
				ctx = WithChannel(ctx, channel)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
