package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
)

const (
	// HeaderClientID заголовок с идентификатором клиента салона
	HeaderClientID = "X-Client-ID"

	// HeaderStaffID заголовок с идентификатором сотрудника салона
	HeaderStaffID = "X-Staff-ID"
)

const (
	msgClientIDRequired = "требуется заголовок X-Client-ID"
	msgStaffIDRequired  = "требуется заголовок X-Staff-ID"
)

type contextKey string

const (
	clientIDKey contextKey = "clientID"
	staffIDKey  contextKey = "staffID"
)

// Auth проверяет наличие корректного заголовка X-Client-ID
// и кладет идентификатор клиента в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := parseIDHeader(r, HeaderClientID)
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgClientIDRequired)
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffAuth проверяет наличие корректного заголовка X-Staff-ID
// и кладет идентификатор сотрудника в контекст запроса
func StaffAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID, err := parseIDHeader(r, HeaderStaffID)
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgStaffIDRequired)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIDFromContext извлекает идентификатор клиента из контекста
func ClientIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(clientIDKey).(int64)
	return id, ok
}

// StaffIDFromContext извлекает идентификатор сотрудника из контекста
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey).(int64)
	return id, ok
}

func parseIDHeader(r *http.Request, header string) (int64, error) {
	raw := r.Header.Get(header)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
