// Package seed populates the company lookup table from the SEC ticker export.
package seed

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/seclookup/config"
	"github.com/prognoshealth/seclookup/lookup"
)

// ItemPutter is the slice of dynamodbiface.DynamoDBAPI the loader needs.
type ItemPutter interface {
	PutItemWithContext(aws.Context, *dynamodb.PutItemInput, ...request.Option) (*dynamodb.PutItemOutput, error)
}

// Result counts what a Load did.
type Result struct {
	Written int
	Skipped int
}

// Loader writes companies into the lookup table. Unless Overwrite is set,
// items already in the table are left untouched and counted as skipped.
type Loader struct {
	Table     string
	Overwrite bool

	svc ItemPutter
	log logrus.FieldLogger
}

// NewLoader returns a loader for table. An empty table falls back to
// config.DefaultTableName.
func NewLoader(svc ItemPutter, table string, overwrite bool, log logrus.FieldLogger) *Loader {
	loader := &Loader{
		Table:     table,
		Overwrite: overwrite,
		svc:       svc,
		log:       log,
	}

	if loader.Table == "" {
		loader.Table = config.DefaultTableName
	}

	if loader.log == nil {
		loader.log = logrus.StandardLogger()
	}

	return loader
}

// putItemInput constructs the insertion of company. Without Overwrite it
// applies a condition that fails when the cik is already stored.
func (l *Loader) putItemInput(company lookup.Company) (*dynamodb.PutItemInput, error) {
	item, err := dynamodbattribute.MarshalMap(company)
	if err != nil {
		return nil, errors.Wrapf(err, "failed marshalling %s", company.CIK)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(l.Table),
		Item:      item,
	}

	if !l.Overwrite {
		input.ConditionExpression = aws.String("attribute_not_exists(cik)")
	}

	return input, nil
}

// Load writes companies one at a time and stops at the first failure other
// than an existing item.
func (l *Loader) Load(ctx context.Context, companies []lookup.Company) (Result, error) {
	var result Result

	for _, company := range companies {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, "load interrupted")
		}

		input, err := l.putItemInput(company)
		if err != nil {
			return result, err
		}

		_, err = l.svc.PutItemWithContext(ctx, input)
		if err == nil {
			result.Written++
			continue
		}

		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
			l.log.WithField("cik", company.CIK).Debug("company already stored")
			result.Skipped++
			continue
		}

		return result, errors.Wrapf(err, "failed put %s to %s", company.CIK, l.Table)
	}

	return result, nil
}
