package proxy

import (
	"github.com/aws/aws-lambda-go/events"
)

func testHandler(context *RouteContext) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{StatusCode: 200, Body: context.Request.HTTPMethod}, nil
}

func testRequest(method string, path string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: method,
		Path:       path,
		Headers:    map[string]string{},
	}
}

func testQueryRequest(method string, query map[string]string) events.APIGatewayProxyRequest {
	request := testRequest(method, "/")
	request.QueryStringParameters = query
	return request
}
