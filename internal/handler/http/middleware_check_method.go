// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for chi's MethodNotAllowed hook. A known path
// requested with an unregistered method answers 404 instead of 405, so
// callers cannot probe which paths exist.
//
// Only exact patterns are compared: routes inside mounted subrouters are
// looked up through their parent pattern.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !methodRegistered(router.Routes(), r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		router.ServeHTTP(w, r)
	}
}

func methodRegistered(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern == path {
			_, ok := route.Handlers[method]
			return ok
		}
		if route.SubRoutes == nil {
			continue
		}
		prefix := strings.TrimSuffix(route.Pattern, "/*")
		if rest, ok := strings.CutPrefix(path, prefix); ok && rest != "" {
			if methodRegistered(route.SubRoutes.Routes(), rest, method) {
				return true
			}
		}
	}
	return false
}
