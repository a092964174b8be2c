package github

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgdesk/pkg/domain/model"
	"github.com/secmon-lab/orgdesk/pkg/domain/types"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Query is a parsed GraphQL query document and the variables it declares
type Query struct {
	text      string
	operation string
	variables []string
}

// MustParseQuery parses a query document and panics if it is malformed.
// Intended for package-level query definitions.
func MustParseQuery(name, text string) *Query {
	q, err := ParseQuery(name, text)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseQuery parses a query document containing exactly one operation
func ParseQuery(name, text string) (*Query, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GraphQL query", goerr.V("name", name))
	}
	if len(doc.Operations) != 1 {
		return nil, goerr.New("GraphQL query must contain exactly one operation",
			goerr.V("name", name),
			goerr.V("operations", len(doc.Operations)))
	}

	op := doc.Operations[0]
	q := &Query{text: text, operation: op.Name}
	for _, v := range op.VariableDefinitions {
		q.variables = append(q.variables, v.Variable)
	}
	return q, nil
}

// Operation returns the operation name, empty for anonymous queries
func (q *Query) Operation() string {
	return q.operation
}

// check verifies every declared variable has a value
func (q *Query) check(variables map[string]any) error {
	for _, name := range q.variables {
		if _, ok := variables[name]; !ok {
			return goerr.New("GraphQL variable not provided",
				goerr.V("operation", q.operation),
				goerr.V("variable", name))
		}
	}
	return nil
}

// GraphQLError is a single entry of a GraphQL errors array
type GraphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// GraphQLErrors is returned when a GraphQL response carries errors
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ge := range e {
		msgs = append(msgs, ge.Message)
	}
	return "github: GraphQL: " + strings.Join(msgs, "; ")
}

// graphql executes a query and decodes the data field into result
func (c *Client) graphql(ctx context.Context, q *Query, variables map[string]any, result any) error {
	if err := q.check(variables); err != nil {
		return err
	}

	request := struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{Query: q.text, Variables: variables}

	var response struct {
		Data   json.RawMessage `json:"data"`
		Errors GraphQLErrors   `json:"errors"`
	}
	if _, err := c.post(ctx, "/graphql", request, &response); err != nil {
		return goerr.Wrap(err, "GraphQL request failed", goerr.V("operation", q.operation))
	}
	if len(response.Errors) > 0 {
		return goerr.Wrap(response.Errors, "GraphQL query returned errors", goerr.V("operation", q.operation))
	}
	if len(response.Data) == 0 || string(response.Data) == "null" {
		return goerr.New("GraphQL response has no data", goerr.V("operation", q.operation))
	}

	if err := json.Unmarshal(response.Data, result); err != nil {
		return goerr.Wrap(err, "failed to decode GraphQL data", goerr.V("operation", q.operation))
	}
	return nil
}

var organizationQuery = MustParseQuery("organization", `
query OrganizationEnterprise($org: String!) {
  organization(login: $org) {
    name
    login
    viewerCanAdminister
    enterprise {
      slug
      name
    }
    plan {
      name
    }
  }
}
`)

// QueryOrganization fetches enterprise membership and plan through GraphQL
func (c *Client) QueryOrganization(ctx context.Context, org types.OrgName) (*model.OrganizationGraph, error) {
	var data struct {
		Organization *struct {
			Name                string `json:"name"`
			Login               string `json:"login"`
			ViewerCanAdminister bool   `json:"viewerCanAdminister"`
			Enterprise          *struct {
				Slug string `json:"slug"`
				Name string `json:"name"`
			} `json:"enterprise"`
			Plan *struct {
				Name string `json:"name"`
			} `json:"plan"`
		} `json:"organization"`
	}

	if err := c.graphql(ctx, organizationQuery, map[string]any{"org": org.String()}, &data); err != nil {
		return nil, goerr.Wrap(err, "failed to query organization", goerr.V("org", org))
	}
	if data.Organization == nil {
		return nil, goerr.New("organization not found in GraphQL response", goerr.V("org", org))
	}

	o := data.Organization
	result := &model.OrganizationGraph{
		Name:                o.Name,
		Login:               o.Login,
		ViewerCanAdminister: o.ViewerCanAdminister,
	}
	if o.Plan != nil {
		result.PlanName = o.Plan.Name
	}
	if o.Enterprise != nil {
		result.Enterprise = &model.Enterprise{Name: o.Enterprise.Name, Slug: o.Enterprise.Slug}
	}
	return result, nil
}
