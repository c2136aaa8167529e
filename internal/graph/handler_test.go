package graph

import (
	"context"
	"fmt"
	"strings"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"

	"naija-aroma/internal/errs"
	"naija-aroma/internal/logger"
)

const maskTestSchema = `
	schema {
		query: Query
	}

	type Query {
		order: String!
	}
`

type maskTestRoot struct {
	err error
}

func (r *maskTestRoot) Order() (string, error) {
	return "", r.err
}

func execWithResolverError(t *testing.T, resolverErr error) *graphql.Response {
	t.Helper()
	h := &Handler{
		schema: graphql.MustParseSchema(maskTestSchema, &maskTestRoot{err: resolverErr}),
		log:    logger.New("test"),
	}
	response := h.schema.Exec(context.Background(), `{ order }`, "", nil)
	h.maskInternalErrors(response, "req-1")
	return response
}

func TestMaskInternalErrors_HidesUnclassifiedDetail(t *testing.T) {
	driverErr := fmt.Errorf("failed to get order: pq: password authentication failed for user %q", "postgres")
	response := execWithResolverError(t, driverErr)

	if len(response.Errors) != 1 {
		t.Fatalf("Exec() errors = %d, want 1", len(response.Errors))
	}
	qe := response.Errors[0]
	if strings.Contains(qe.Message, "pq:") || strings.Contains(qe.Message, "postgres") {
		t.Errorf("masked message = %q, still carries driver detail", qe.Message)
	}
	if qe.Message != "Internal server error" {
		t.Errorf("masked message = %q, want %q", qe.Message, "Internal server error")
	}
	if code, _ := qe.Extensions["code"].(string); code != string(errs.CodeInternal) {
		t.Errorf("extensions code = %q, want %q", code, errs.CodeInternal)
	}
}

func TestMaskInternalErrors_KeepsClassifiedErrors(t *testing.T) {
	response := execWithResolverError(t, errs.NotFound("Order not found"))

	if len(response.Errors) != 1 {
		t.Fatalf("Exec() errors = %d, want 1", len(response.Errors))
	}
	qe := response.Errors[0]
	if qe.Message != "Order not found" {
		t.Errorf("message = %q, want %q", qe.Message, "Order not found")
	}
	if code, _ := qe.Extensions["code"].(string); code != string(errs.CodeNotFound) {
		t.Errorf("extensions code = %q, want %q", code, errs.CodeNotFound)
	}
}

func TestMaskInternalErrors_LeavesQueryValidationAlone(t *testing.T) {
	h := &Handler{
		schema: graphql.MustParseSchema(maskTestSchema, &maskTestRoot{}),
		log:    logger.New("test"),
	}
	response := h.schema.Exec(context.Background(), `{ noSuchField }`, "", nil)
	h.maskInternalErrors(response, "req-1")

	if len(response.Errors) == 0 {
		t.Fatal("Exec() returned no errors for an unknown field")
	}
	if response.Errors[0].Message == "Internal server error" {
		t.Error("query validation error was masked, want original message")
	}
}
