package mcp

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewHTTPServer serves the MCP tools over streamable HTTP at /mcp, guarded by
// a bearer token when apiKey is set. The caller owns ListenAndServe and
// Shutdown.
func NewHTTPServer(addr, apiKey string, tools *Tools) *http.Server {
	streamable := server.NewStreamableHTTPServer(NewServer(tools), server.WithStateLess(true))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"status":"ok"}`)
	})

	var mcpHandler http.Handler = streamable
	if apiKey != "" {
		mcpHandler = bearerAuth(apiKey, streamable)
	}
	mux.Handle("/mcp", mcpHandler)

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// bearerAuth rejects requests whose Authorization header does not carry
// apiKey as a bearer token.
func bearerAuth(apiKey string, next http.Handler) http.Handler {
	want := []byte(apiKey)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			unauthorized(w, `Bearer realm="mcp"`, "missing Authorization header")
			return
		}
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), want) != 1 {
			zap.L().Warn("mcp auth rejected", zap.String("remote", r.RemoteAddr))
			unauthorized(w, `Bearer realm="mcp", error="invalid_token"`, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, challenge, msg string) {
	w.Header().Set("WWW-Authenticate", challenge)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":%q}`+"\n", msg)
}
