// Command seed loads the SEC company_tickers.json export into the company
// lookup table.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/seclookup/config"
	"github.com/prognoshealth/seclookup/lambdautils"
	"github.com/prognoshealth/seclookup/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	var (
		file      = flag.String("file", "company_tickers.json", "Path to the SEC company_tickers.json export")
		table     = flag.String("table", cfg.TableName, "DynamoDB table to load")
		overwrite = flag.Bool("overwrite", false, "Replace companies already in the table")
		dryRun    = flag.Bool("dry-run", false, "Parse the export without writing to the table")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}

	logger, err := lambdautils.NewLogger(level, "text")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build logger")
	}

	b, err := os.ReadFile(*file)
	if err != nil {
		logger.WithError(err).WithField("file", *file).Fatal("Failed to read company tickers")
	}

	companies, err := seed.ParseTickers(b)
	if err != nil {
		logger.WithError(err).WithField("file", *file).Fatal("Failed to parse company tickers")
	}

	logger.WithFields(logrus.Fields{
		"file":      *file,
		"table":     *table,
		"companies": len(companies),
		"overwrite": *overwrite,
		"dry_run":   *dryRun,
	}).Info("Starting company seed")

	if *dryRun {
		return
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	awsCfg := aws.NewConfig()
	if cfg.Region != "" {
		awsCfg = awsCfg.WithRegion(cfg.Region)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader := seed.NewLoader(dynamodb.New(sess, awsCfg), *table, *overwrite, logger)

	result, err := loader.Load(ctx, companies)
	if err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"written": result.Written,
			"skipped": result.Skipped,
		}).Fatal("Company seed failed")
	}

	logger.WithFields(logrus.Fields{
		"written": result.Written,
		"skipped": result.Skipped,
	}).Info("Company seed completed")
}
