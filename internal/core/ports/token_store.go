package ports

import "net/http"

// TokenStore holds the operator's upstream bearer token between requests.
// The token is the only state the application persists on the operator's
// behalf. A backend that cannot be reached reports the token as absent,
// degrading the session to unauthenticated rather than failing the page.
type TokenStore interface {
	Set(w http.ResponseWriter, r *http.Request, token string) error
	Get(r *http.Request) (token string, ok bool)
	Clear(w http.ResponseWriter, r *http.Request)
}
