package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type mockDynamoDBClient struct {
	dynamodbiface.DynamoDBAPI

	item  map[string]*dynamodb.AttributeValue
	err   error
	calls []*dynamodb.GetItemInput
}

func (m *mockDynamoDBClient) GetItemWithContext(ctx aws.Context, input *dynamodb.GetItemInput, opts ...request.Option) (*dynamodb.GetItemOutput, error) {
	m.calls = append(m.calls, input)

	if m.err != nil {
		return nil, m.err
	}

	return &dynamodb.GetItemOutput{Item: m.item}, nil
}

func nameItem(name string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"name": {S: aws.String(name)},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testHandler(svc ItemGetter) *Handler {
	return NewHandler(svc, "", quietLogger())
}

func testRequest(method string, query map[string]string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod:            method,
		Path:                  "/",
		QueryStringParameters: query,
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestNewHandler_defaults(t *testing.T) {
	h := NewHandler(&mockDynamoDBClient{}, "", nil)

	assert.Equal(t, "sec-company-lookup", h.Table)
	assert.Equal(t, logrus.StandardLogger(), h.log)
}

func TestHandler_Handle_get(t *testing.T) {
	cases := []struct {
		name         string
		path         string
		item         map[string]*dynamodb.AttributeValue
		err          error
		expectedCode int
		expectedBody string
	}{
		{"named item", "/", nameItem("Acme Corp"), nil, 200, "Acme Corp"},
		{"empty path", "", nameItem("Acme Corp"), nil, 200, "Acme Corp"},
		{"newline in path", "/company/a\nb", nameItem("Acme Corp"), nil, 200, "Acme Corp"},
		{"control characters in path", "/\r\n/%0A/..", nameItem("Acme Corp"), nil, 200, "Acme Corp"},
		{"item without name", "/", map[string]*dynamodb.AttributeValue{"ticker": {S: aws.String("ACME")}}, nil, 200, ""},
		{"empty item", "/", map[string]*dynamodb.AttributeValue{}, nil, 200, ""},
		{"no item", "/", nil, nil, 200, ""},
		{"plain store error", "/", nil, errors.New("Throttled"), 400, "Throttled"},
		{"aws store error", "/", nil, awserr.New(dynamodb.ErrCodeProvisionedThroughputExceededException, "Throttled", nil), 400, "Throttled"},
		{"missing table", "/", nil, awserr.New(dynamodb.ErrCodeResourceNotFoundException, "Requested resource not found", nil), 400, "Requested resource not found"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &mockDynamoDBClient{item: c.item, err: c.err}
			h := testHandler(svc)

			request := testRequest("GET", map[string]string{"cik": "0000000042"})
			request.Path = c.path

			response, err := h.Handle(context.Background(), request)

			assert.NoError(t, err)
			assert.Equal(t, c.expectedCode, response.StatusCode)
			assert.Equal(t, c.expectedBody, response.Body)
			assert.Equal(t, jsonHeaders, response.Headers)
			assert.Len(t, svc.calls, 1)
		})
	}
}

func TestHandler_Handle_apple(t *testing.T) {
	svc := &mockDynamoDBClient{item: nameItem("Apple Inc.")}
	h := testHandler(svc)

	response, err := h.Handle(context.Background(), testRequest("GET", map[string]string{"cik": "0000320193"}))

	assert.NoError(t, err)
	assert.Equal(t, events.APIGatewayProxyResponse{
		StatusCode: 200,
		Body:       "Apple Inc.",
		Headers:    jsonHeaders,
	}, response)

	expected := &dynamodb.GetItemInput{
		TableName: aws.String("sec-company-lookup"),
		Key: map[string]*dynamodb.AttributeValue{
			"cik": {S: aws.String("0000320193")},
		},
		AttributesToGet: aws.StringSlice([]string{"name"}),
	}

	assert.Len(t, svc.calls, 1)
	if diff := cmp.Diff(expected, svc.calls[0]); diff != "" {
		t.Errorf("unexpected GetItemInput (-want +got):\n%s", diff)
	}
}

func TestHandler_Handle_configuredTable(t *testing.T) {
	svc := &mockDynamoDBClient{item: nameItem("Apple Inc.")}
	h := NewHandler(svc, "sec-company-lookup-staging", quietLogger())

	_, err := h.Handle(context.Background(), testRequest("GET", map[string]string{"cik": "0000320193"}))

	assert.NoError(t, err)
	assert.Len(t, svc.calls, 1)
	assert.Equal(t, "sec-company-lookup-staging", *svc.calls[0].TableName)
}

func TestHandler_Handle_unsupportedMethod(t *testing.T) {
	cases := []struct {
		method string
		query  map[string]string
	}{
		{"DELETE", map[string]string{}},
		{"DELETE", nil},
		{"POST", map[string]string{"cik": "0000320193"}},
		{"PUT", map[string]string{"cik": "0000320193"}},
		{"PATCH", nil},
		{"HEAD", map[string]string{"cik": "0000320193"}},
		{"BREW", nil},
	}

	for _, c := range cases {
		svc := &mockDynamoDBClient{item: nameItem("Apple Inc.")}
		h := testHandler(svc)

		response, err := h.Handle(context.Background(), testRequest(c.method, c.query))

		assert.NoError(t, err)
		assert.Equal(t, events.APIGatewayProxyResponse{
			StatusCode: 400,
			Body:       `Unsupported method "` + c.method + `"`,
			Headers:    jsonHeaders,
		}, response)
		assert.Empty(t, svc.calls)
	}
}

func TestHandler_Handle_missingCIK(t *testing.T) {
	cases := []map[string]string{
		nil,
		{},
		{"cik": ""},
		{"name": "Apple Inc."},
	}

	for _, query := range cases {
		svc := &mockDynamoDBClient{item: nameItem("Apple Inc.")}
		h := testHandler(svc)

		response, err := h.Handle(context.Background(), testRequest("GET", query))

		assert.NoError(t, err)
		assert.Equal(t, 400, response.StatusCode)
		assert.Equal(t, `missing required query parameter "cik"`, response.Body)
		assert.Equal(t, jsonHeaders, response.Headers)
		assert.Empty(t, svc.calls)
	}
}

func TestHandler_Handle_scalarName(t *testing.T) {
	cases := []struct {
		name         string
		value        *dynamodb.AttributeValue
		expectedBody string
	}{
		{"string", &dynamodb.AttributeValue{S: aws.String("Apple Inc.")}, "Apple Inc."},
		{"empty string", &dynamodb.AttributeValue{S: aws.String("")}, ""},
		{"number", &dynamodb.AttributeValue{N: aws.String("320193")}, "320193"},
		{"zero", &dynamodb.AttributeValue{N: aws.String("0.0")}, ""},
		{"true", &dynamodb.AttributeValue{BOOL: aws.Bool(true)}, "true"},
		{"false", &dynamodb.AttributeValue{BOOL: aws.Bool(false)}, ""},
		{"null", &dynamodb.AttributeValue{NULL: aws.Bool(true)}, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &mockDynamoDBClient{item: map[string]*dynamodb.AttributeValue{"name": c.value}}
			h := testHandler(svc)

			response, err := h.Handle(context.Background(), testRequest("GET", map[string]string{"cik": "0000320193"}))

			assert.NoError(t, err)
			assert.Equal(t, 200, response.StatusCode)
			assert.Equal(t, c.expectedBody, response.Body)
		})
	}
}

func TestHandler_Handle_nonScalarName(t *testing.T) {
	values := []*dynamodb.AttributeValue{
		{L: []*dynamodb.AttributeValue{{S: aws.String("Apple Inc.")}}},
		{M: map[string]*dynamodb.AttributeValue{"legal": {S: aws.String("Apple Inc.")}}},
		{SS: aws.StringSlice([]string{"Apple Inc."})},
		{B: []byte("Apple Inc.")},
		{N: aws.String("lots")},
	}

	for _, value := range values {
		svc := &mockDynamoDBClient{item: map[string]*dynamodb.AttributeValue{"name": value}}
		h := testHandler(svc)

		response, err := h.Handle(context.Background(), testRequest("GET", map[string]string{"cik": "0000320193"}))

		assert.NoError(t, err)
		assert.Equal(t, 400, response.StatusCode)
		assert.True(t, strings.HasPrefix(response.Body, "failed reading item 0000320193 from sec-company-lookup: "), response.Body)
	}
}

func TestHandler_Handle_logsCIK(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	h := NewHandler(&mockDynamoDBClient{}, "", logger)

	for _, method := range []string{"GET", "DELETE"} {
		buf.Reset()

		_, err := h.Handle(context.Background(), testRequest(method, map[string]string{"cik": "0000320193"}))
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 1)

		entry := map[string]interface{}{}
		assert.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "0000320193", entry["cik"])
		assert.Equal(t, "company lookup requested", entry["msg"])
	}
}
