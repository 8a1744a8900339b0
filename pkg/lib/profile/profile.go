package profile

import (
	"net"
	"net/http"
	"net/http/pprof"
)

type profileConfig struct {
	pprof   bool
	cmdline bool
	profile bool
	symbol  bool
	trace   bool
}

// Option applies a configuration option to the given config.
type Option func(p *profileConfig)

// WithCPUProfile enables /debug/pprof/profile.
func WithCPUProfile() Option {
	return func(p *profileConfig) {
		p.profile = true
	}
}

// WithIndex enables /debug/pprof/, which serves the heap, goroutine
// and other named profiles.
func WithIndex() Option {
	return func(p *profileConfig) {
		p.pprof = true
	}
}

func (p *profileConfig) apply(options []Option) {
	if len(options) == 0 {
		// If no options are given, default to all
		p.pprof = true
		p.cmdline = true
		p.profile = true
		p.symbol = true
		p.trace = true

		return
	}

	for _, o := range options {
		o(p)
	}
}

// RegisterHandlers registers profile Handlers with the given ServeMux.
// Profiles are only served to clients on the loopback interface.
//
// The Handlers registered are determined by the given options.
// If no options are given, all available handlers are registered by default.
func RegisterHandlers(mux *http.ServeMux, options ...Option) {
	config := &profileConfig{}
	config.apply(options)

	if config.pprof {
		mux.Handle("/debug/pprof/", requireLoopback(http.HandlerFunc(pprof.Index)))
	}
	if config.cmdline {
		mux.Handle("/debug/pprof/cmdline", requireLoopback(http.HandlerFunc(pprof.Cmdline)))
	}
	if config.profile {
		mux.Handle("/debug/pprof/profile", requireLoopback(http.HandlerFunc(pprof.Profile)))
	}
	if config.symbol {
		mux.Handle("/debug/pprof/symbol", requireLoopback(http.HandlerFunc(pprof.Symbol)))
	}
	if config.trace {
		mux.Handle("/debug/pprof/trace", requireLoopback(http.HandlerFunc(pprof.Trace)))
	}
}

func requireLoopback(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
