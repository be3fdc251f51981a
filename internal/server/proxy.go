package server

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
)

// The browser app talks to the backend API and to Mechanical Turk through
// same-origin relative paths; the front-end resolves them:
//
//	{ctxPath}api/*   -> the study backend, with only the ctx path stripped so
//	                    the backend sees the same /api/... paths the server-side
//	                    client requests
//	{ctxPath}mturk/* -> the MTurk sandbox or production host, with only the
//	                    ctx path stripped (MTurk expects the /mturk/... path)

// newAPIProxy forwards API calls to the study backend.
func newAPIProxy(target *url.URL, ctxPath string, log *slog.Logger) *httputil.ReverseProxy {
	prefix := strings.TrimSuffix(ctxPath, "/")

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()

			rest := strings.TrimPrefix(pr.In.URL.Path, prefix)
			pr.Out.URL.Path = strings.TrimSuffix(target.Path, "/") + rest
		},
		ErrorHandler: proxyErrorHandler(log, "api"),
	}
}

// newMTurkProxy forwards assignment submissions to Mechanical Turk.
func newMTurkProxy(target *url.URL, ctxPath string, log *slog.Logger) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.Host = target.Host

			// keep the /mturk/... path, drop only the deployment prefix
			rest := strings.TrimPrefix(pr.In.URL.Path, strings.TrimSuffix(ctxPath, "/"))
			pr.Out.URL.Path = rest
		},
		ErrorHandler: proxyErrorHandler(log, "mturk"),
	}
}

func proxyErrorHandler(log *slog.Logger, upstream string) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("proxy request failed",
			slog.String("upstream", upstream),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		w.WriteHeader(http.StatusBadGateway)
	}
}
