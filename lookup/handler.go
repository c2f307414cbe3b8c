package lookup

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/seclookup/config"
	"github.com/prognoshealth/seclookup/lambdautils"
	"github.com/prognoshealth/seclookup/proxy"
)

// Handler answers company lookup requests. It holds no per-request state and
// is safe for concurrent use; the dynamodb client is shared by all
// invocations.
type Handler struct {
	Table string

	svc    ItemGetter
	log    logrus.FieldLogger
	router *proxy.Router
}

// NewHandler returns a Handler reading from table through svc. An empty table
// falls back to config.DefaultTableName and a nil log to the logrus standard
// logger.
func NewHandler(svc ItemGetter, table string, log logrus.FieldLogger) *Handler {
	h := &Handler{
		Table: table,
		svc:   svc,
		log:   log,
	}

	if h.Table == "" {
		h.Table = config.DefaultTableName
	}

	if h.log == nil {
		h.log = logrus.StandardLogger()
	}

	h.router = &proxy.Router{}
	h.router.GET(h.getCompany)
	h.router.AddCatchAllHandler(h.unsupportedMethod)
	h.router.AddErrorHandler(h.failed)

	return h
}

// Handle maps one api gateway request to its response. The returned error is
// always nil; failures are reported to the caller as a 400.
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	lambdautils.WithInvocation(ctx, h.log).
		WithField(KeyAttribute, request.QueryStringParameters[KeyAttribute]).
		Info("company lookup requested")

	return h.router.Route(ctx, request)
}

func (h *Handler) getCompany(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	cik, _ := rctx.Query(KeyAttribute)
	if cik == "" {
		return events.APIGatewayProxyResponse{}, ErrMissingCIK
	}

	company, err := h.Fetch(rctx.Context, cik)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	if company == nil {
		return respond(http.StatusOK, ""), nil
	}

	return respond(http.StatusOK, company.Name), nil
}

func (h *Handler) unsupportedMethod(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{}, &UnsupportedMethodError{Method: request.HTTPMethod}
}

func (h *Handler) failed(ctx context.Context, request events.APIGatewayProxyRequest, err error) (events.APIGatewayProxyResponse, error) {
	lambdautils.WithInvocation(ctx, h.log).
		WithError(err).
		WithField("method", request.HTTPMethod).
		Debug("company lookup failed")

	return respond(http.StatusBadRequest, err.Error()), nil
}

// respond builds the response for every outcome. StatusCode is an int in
// events.APIGatewayProxyResponse, so a direct invoke sees 200/400 as numbers
// rather than the strings "200"/"400"; api gateway accepts either form.
func respond(status int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: body,
	}
}
