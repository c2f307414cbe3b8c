package proxy

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// RouteContext contains all the request information for a route when matched.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayProxyRequest
}

// Query returns the named query string parameter and whether it was present.
// API Gateway sends a nil map when the request has no query string.
func (ctx *RouteContext) Query(name string) (string, bool) {
	v, ok := ctx.Request.QueryStringParameters[name]
	return v, ok
}
