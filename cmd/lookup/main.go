// Function lookup resolves a SEC cik to a company name behind api gateway.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/seclookup/config"
	"github.com/prognoshealth/seclookup/lambdautils"
	"github.com/prognoshealth/seclookup/lookup"
)

var handler *lookup.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed loading configuration")
	}

	logger, err := lambdautils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.WithError(err).Fatal("failed building logger")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	awsCfg := aws.NewConfig()
	if cfg.Region != "" {
		awsCfg = awsCfg.WithRegion(cfg.Region)
	}

	handler = lookup.NewHandler(dynamodb.New(sess, awsCfg), cfg.TableName, logger)
	logger.WithField("table", handler.Table).Info("loading function")
}

func main() {
	lambda.Start(handler.Handle)
}
