package middlewares

import (
	"context"
	"net/http"
	"strings"

	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/exceptions"
	"clinicportal-service/internal/pkg/utils"
)

// Session resolves the portal bearer token into a stored session. Handlers
// behind it can rely on the backend token and user being present on the
// context; a missing or expired session short-circuits with a redirect hint
// so the browser returns to the login page.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix)

		sessionID, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound())
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_BACKEND_TOKEN_KEY, session.Token)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_KEY, session.User)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
