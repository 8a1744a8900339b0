package profile

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterHandlers(t *testing.T) {
	for _, tt := range []struct {
		name       string
		options    []Option
		path       string
		remoteAddr string
		status     int
	}{
		{name: "Loopback", path: "/debug/pprof/cmdline", remoteAddr: "127.0.0.1:4242", status: http.StatusOK},
		{name: "LoopbackIPv6", path: "/debug/pprof/cmdline", remoteAddr: "[::1]:4242", status: http.StatusOK},
		{name: "Remote", path: "/debug/pprof/cmdline", remoteAddr: "10.0.0.7:4242", status: http.StatusForbidden},
		{name: "Unparseable", path: "/debug/pprof/cmdline", remoteAddr: "somewhere", status: http.StatusForbidden},
		{name: "NotRegistered", options: []Option{WithCPUProfile()}, path: "/debug/pprof/cmdline", remoteAddr: "127.0.0.1:4242", status: http.StatusNotFound},
		{name: "Index", options: []Option{WithIndex()}, path: "/debug/pprof/", remoteAddr: "127.0.0.1:4242", status: http.StatusOK},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			RegisterHandlers(mux, tt.options...)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.RemoteAddr = tt.remoteAddr
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
