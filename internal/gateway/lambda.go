// Package gateway binds the HTTP router to API Gateway proxy invocations.
package gateway

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// Handler is a Lambda handler for REST API proxy integrations.
type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewHandler adapts h so every proxy event is served as a plain HTTP request.
func NewHandler(h http.Handler) Handler {
	adapter := httpadapter.New(h)
	return adapter.ProxyWithContext
}

// Start hands control to the Lambda runtime. It does not return.
func Start(h http.Handler) {
	lambda.Start(NewHandler(h))
}
