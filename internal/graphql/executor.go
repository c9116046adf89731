package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	gqlvalidator "github.com/vektah/gqlparser/v2/validator"
	"go.uber.org/zap"
)

// Request is a GraphQL-over-HTTP request body.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Response is a GraphQL-over-HTTP response body.
type Response struct {
	Data   map[string]interface{} `json:"data,omitempty"`
	Errors []ResponseError        `json:"errors,omitempty"`
}

// ResponseError is one entry of the top-level errors list.
type ResponseError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// RequestError reports a document that could not be executed at all.
type RequestError struct {
	Errors []ResponseError
}

func (e *RequestError) Error() string {
	if len(e.Errors) == 0 {
		return "invalid request"
	}
	return e.Errors[0].Message
}

// Execute parses and validates req against the schema, coerces its variables
// against the operation and resolves every root field. Document and variable
// errors are returned as *RequestError; resolver errors are reported inside
// the Response.
func (r *Resolver) Execute(ctx context.Context, req Request) (*Response, error) {
	doc, gqlErrs := gqlparser.LoadQuery(schema, req.Query)
	if len(gqlErrs) > 0 {
		reqErr := &RequestError{}
		for _, e := range gqlErrs {
			reqErr.Errors = append(reqErr.Errors, ResponseError{Message: e.Message})
		}
		return nil, reqErr
	}

	op, err := selectOperation(doc, req.OperationName)
	if err != nil {
		return nil, &RequestError{Errors: []ResponseError{{Message: err.Error()}}}
	}

	vars, err := gqlvalidator.VariableValues(schema, op, req.Variables)
	if err != nil {
		return nil, &RequestError{Errors: []ResponseError{{Message: variableErrorMessage(err)}}}
	}

	resp := &Response{Data: make(map[string]interface{})}
	for _, field := range collectFields(op.SelectionSet) {
		key := field.Alias
		if key == "" {
			key = field.Name
		}

		value, err := r.resolveField(ctx, field, vars)
		if err != nil {
			r.Logger.Ctx(ctx).Warn("GraphQL field failed", zap.String("field", field.Name), zap.Error(err))
			resp.Errors = append(resp.Errors, ResponseError{Message: err.Error(), Path: []interface{}{key}})
			resp.Data[key] = nil
			continue
		}

		projected, err := project(value, field.SelectionSet)
		if err != nil {
			return nil, err
		}
		resp.Data[key] = projected
	}
	return resp, nil
}

// variableErrorMessage renders e.g. "variable.input.items[0].heightCm must be defined".
func variableErrorMessage(err error) string {
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return strings.TrimSpace(gqlErr.Path.String() + " " + gqlErr.Message)
	}
	return err.Error()
}

func (r *Resolver) resolveField(ctx context.Context, field *ast.Field, vars map[string]interface{}) (interface{}, error) {
	args := field.ArgumentMap(vars)
	query := r.Query()

	switch field.Name {
	case "__typename":
		return "Query", nil
	case "health":
		return query.Health(ctx)
	case "carriers":
		return query.Carriers(ctx)
	case "serviceTypes":
		return query.ServiceTypes(ctx)
	case "destination":
		postalCode, _ := args["postalCode"].(string)
		return query.Destination(ctx, postalCode)
	case "freeShippingEligibility":
		subtotal, err := toFloat(args["subtotal"])
		if err != nil {
			return nil, fmt.Errorf("subtotal: %w", err)
		}
		var threshold *float64
		if raw, ok := args["threshold"]; ok && raw != nil {
			t, err := toFloat(raw)
			if err != nil {
				return nil, fmt.Errorf("threshold: %w", err)
			}
			threshold = &t
		}
		return query.FreeShippingEligibility(ctx, subtotal, threshold)
	case "estimateShipping":
		var input EstimateShippingInput
		if err := decodeArgument(args["input"], &input); err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		return query.EstimateShipping(ctx, input)
	default:
		return nil, fmt.Errorf("unknown field %q", field.Name)
	}
}

func selectOperation(doc *ast.QueryDocument, name string) (*ast.OperationDefinition, error) {
	if name != "" {
		op := doc.Operations.ForName(name)
		if op == nil {
			return nil, fmt.Errorf("operation %q not found", name)
		}
		return op, nil
	}
	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("operationName is required when the document has %d operations", len(doc.Operations))
	}
	return doc.Operations[0], nil
}

// collectFields flattens fragments of a validated selection set.
func collectFields(set ast.SelectionSet) []*ast.Field {
	var fields []*ast.Field
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			fields = append(fields, s)
		case *ast.InlineFragment:
			fields = append(fields, collectFields(s.SelectionSet)...)
		case *ast.FragmentSpread:
			if s.Definition != nil {
				fields = append(fields, collectFields(s.Definition.SelectionSet)...)
			}
		}
	}
	return fields
}

// project keeps only the selected fields of a resolved value. Resolver
// results are round-tripped through JSON so struct tags name the fields.
func project(value interface{}, set ast.SelectionSet) (interface{}, error) {
	if len(set) == 0 {
		return value, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return selectFields(generic, set), nil
}

func selectFields(value interface{}, set ast.SelectionSet) interface{} {
	switch v := value.(type) {
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			out[i] = selectFields(elem, set)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(set))
		for _, field := range collectFields(set) {
			key := field.Alias
			if key == "" {
				key = field.Name
			}
			if field.Name == "__typename" && field.ObjectDefinition != nil {
				out[key] = field.ObjectDefinition.Name
				continue
			}
			out[key] = selectFields(v[field.Name], field.SelectionSet)
		}
		return out
	default:
		return v
	}
}

func decodeArgument(value interface{}, out interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
