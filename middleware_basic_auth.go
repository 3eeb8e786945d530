package main

import (
	"crypto/subtle"
	"net/http"
)

const basicAuthRealm = `Basic realm="geolocator", charset="UTF-8"`

type basicAuthMiddleware struct {
	handler  http.Handler
	user     []byte
	password []byte
}

func (b *basicAuthMiddleware) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	user, pass, ok := req.BasicAuth()
	if ok && b.check([]byte(user), []byte(pass)) {
		b.handler.ServeHTTP(w, req)

		return
	}

	w.Header().Set("WWW-Authenticate", basicAuthRealm)
	http.Error(w, "Authentication is required", http.StatusUnauthorized)
}

func (b *basicAuthMiddleware) check(user, password []byte) bool {
	userOk := subtle.ConstantTimeCompare(b.user, user)
	passwordOk := subtle.ConstantTimeCompare(b.password, password)

	return userOk+passwordOk == 2
}
