package graph

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"

	"naija-aroma/internal/auth"
	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/payments"
)

type requestIDKey struct{}

// RequestIDFromContext returns the request ID set by the HTTP handler,
// or an empty string outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Handler serves the GraphQL endpoint plus the payment webhook and
// health check.
type Handler struct {
	schema   *graphql.Schema
	callers  *auth.Resolver
	payments *payments.Service
	log      *logger.Logger
}

// NewHandler parses the schema against the root resolver and returns
// the HTTP surface. Schema errors are programming errors and panic at
// startup. Production servers run with introspection disabled.
func NewHandler(root *Resolver, callers *auth.Resolver, paymentsSvc *payments.Service, production bool, log *logger.Logger) *Handler {
	var opts []graphql.SchemaOpt
	if production {
		opts = append(opts, graphql.DisableIntrospection())
	}
	schema := graphql.MustParseSchema(Schema, root, opts...)
	return &Handler{schema: schema, callers: callers, payments: paymentsSvc, log: log}
}

// Mux returns the routed HTTP handler.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", h.serveGraphQL)
	mux.HandleFunc("/webhook/payments", h.servePaymentWebhook)
	mux.HandleFunc("/health", h.serveHealth)
	return mux
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *Handler) serveGraphQL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requestID := logger.GenerateRequestID()
	ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)

	// An invalid or expired token degrades to an anonymous caller
	// rather than failing the whole request.
	caller := h.callers.Resolve(ctx, r.Header.Get("Authorization"), requestID)
	ctx = auth.WithCaller(ctx, caller)

	response := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	h.maskInternalErrors(response, requestID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("response_write_failed", requestID, "Failed to write GraphQL response", err, nil)
	}
}

// maskInternalErrors rewrites resolver failures that carry no
// classification code. The original error is logged server-side; the
// client sees a generic message with the INTERNAL_SERVER_ERROR
// extension instead of repository or driver detail. Typed errors and
// query validation errors pass through untouched.
func (h *Handler) maskInternalErrors(response *graphql.Response, requestID string) {
	for _, qe := range response.Errors {
		if qe.ResolverError == nil {
			continue
		}
		var appErr *errs.Error
		if errors.As(qe.ResolverError, &appErr) {
			continue
		}
		h.log.Error("resolver_error", requestID, "Unclassified resolver error", qe.ResolverError, nil)
		masked := errs.Internal("")
		qe.Message = masked.Message
		qe.Extensions = masked.Extensions()
	}
}

func (h *Handler) servePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := logger.GenerateRequestID()

	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("Gateway-Signature")
	if err := h.payments.HandleWebhook(r.Context(), payload, signature, requestID); err != nil {
		status := http.StatusBadRequest
		var appErr *errs.Error
		if errors.As(err, &appErr) {
			status = appErr.HTTPStatus()
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"received":true}`))
}

func (h *Handler) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
