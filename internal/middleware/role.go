package middleware

import (
	"net/http"

	"github.com/hitoshi/kokoro/internal/model"
)

// NewRoleGate はSessionGuardの後段に合成する役割フィルターを返す。
// 許可集合は固定で、同一のIdentityと許可集合に対する判定は常に同一（純粋・無状態）。
// Identityの役割が許可集合に含まれない場合は403を返し、
// 拒否された役割をメッセージに含める。
func NewRoleGate(allowed ...model.Role) func(next http.Handler) http.Handler {
	allowSet := make(map[model.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := IdentityFromContext(r.Context())
			if err != nil {
				// SessionGuardを通過していないリクエストは認証エラーとして扱う
				WriteError(w, model.NewUnauthenticatedError())
				return
			}

			if _, ok := allowSet[identity.Role]; !ok {
				WriteError(w, model.NewForbiddenError(identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
