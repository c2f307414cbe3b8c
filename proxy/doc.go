// Package proxy provides utilities for writing aws lambda functions that act as
// aws api gateway rest (v1) proxy integrations. It dispatches an
// events.APIGatewayProxyRequest to a handler by http method and turns handler
// errors into an events.APIGatewayProxyResponse.
//
// Dispatch looks at the method only; the request path plays no part. The
// router is designed to be as simplistic as possible and is not feature rich.
package proxy
