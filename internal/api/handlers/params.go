package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathInt64 извлекает целочисленный path-параметр запроса
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("handlers: missing path parameter %q", name)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("handlers: invalid path parameter %q: %v", name, err)
	}

	return v, nil
}

// QueryInt64 извлекает целочисленный query-параметр запроса
func QueryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("handlers: missing query parameter %q", name)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("handlers: invalid query parameter %q: %v", name, err)
	}

	return v, nil
}
