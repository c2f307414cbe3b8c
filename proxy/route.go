package proxy

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// RouteHandler defines the function interface the route uses to execute a
// request when the route is matched.
type RouteHandler func(*RouteContext) (events.APIGatewayProxyResponse, error)

// Route binds a HttpMethod to the handler serving it.
type Route struct {
	Method  HttpMethod
	Handler RouteHandler
}

// NewRoute returns a Route for the specified method and handler.
func NewRoute(method HttpMethod, handler RouteHandler) *Route {
	return &Route{
		Method:  method,
		Handler: handler,
	}
}

// String returns a string representation of this route.
func (route *Route) String() string {
	return fmt.Sprintf("%s route", route.Method)
}

// IsMatch returns true when the request method is the route's method. The
// comparison is case sensitive, as api gateway passes the method through
// verbatim.
func (route *Route) IsMatch(request events.APIGatewayProxyRequest) bool {
	return route.Method.String() == request.HTTPMethod
}

// Follow executes the route's handler for the given request.
func (route *Route) Follow(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return route.Handler(&RouteContext{
		Context: ctx,
		Request: request,
	})
}
