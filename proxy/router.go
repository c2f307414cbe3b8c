package proxy

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// ErrorHandler defines the function interface the router uses to handle any
// error that occurs while processing routes.
type ErrorHandler func(context.Context, events.APIGatewayProxyRequest, error) (events.APIGatewayProxyResponse, error)

// CatchAllHandler defines the function interface the router uses to handle any
// request whose method has no route.
type CatchAllHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Router will route an incoming events.APIGatewayProxyRequest to the route
// registered for its method and then return the
// events.APIGatewayProxyResponse.
//
// Routes are checked in the order they were added; the first one whose method
// matches is executed.
//
// If the CatchAll handler is set any request without a matching route will be
// handled by it.
//
// If the CatchError handler is set any error will first be passed into the
// handler for additional processing.
//
// Example:
//
//	func companyHandler(ctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
//		cik, _ := ctx.Query("cik")
//
//		return events.APIGatewayProxyResponse{
//			StatusCode: 200,
//			Headers:    map[string]string{"Content-Type": "application/json"},
//			Body:       cik,
//		}, nil
//	}
//
//	func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
//		router := &proxy.Router{}
//		router.GET(companyHandler)
//
//		return router.Route(ctx, request)
//	}
type Router struct {
	Routes     []*Route
	CatchAll   CatchAllHandler
	CatchError ErrorHandler
}

// AddRoute appends route to the list of routes used for request matching.
func (router *Router) AddRoute(route *Route) {
	router.Routes = append(router.Routes, route)
}

// GET adds a new GET route with the specified handler.
func (router *Router) GET(handler RouteHandler) {
	router.AddRoute(NewRoute(GET, handler))
}

// AddCatchAllHandler attaches a catchall handler to the router.
func (router *Router) AddCatchAllHandler(handler CatchAllHandler) {
	router.CatchAll = handler
}

// AddErrorHandler attaches an error handler to the router.
func (router *Router) AddErrorHandler(handler ErrorHandler) {
	router.CatchError = handler
}

// routeInternal executes the first route matching the request method, else
// the catch all handler, else returns an error.
func (router *Router) routeInternal(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	for _, route := range router.Routes {
		if route.IsMatch(request) {
			return route.Follow(ctx, request)
		}
	}

	if router.CatchAll != nil {
		return router.CatchAll(ctx, request)
	}

	return events.APIGatewayProxyResponse{}, errors.Errorf("no route for method '%s'", request.HTTPMethod)
}

// Route dispatches the request by method as described on Router.
//
// If there is an error handler set and an error occurs the error handler is
// executed and its result returned.
func (router *Router) Route(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if router.CatchError == nil {
		return router.routeInternal(ctx, request)
	}

	response, err := router.routeInternal(ctx, request)

	if err != nil {
		return router.CatchError(ctx, request, err)
	}

	return response, nil
}
