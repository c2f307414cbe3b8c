package lookup

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pkg/errors"
)

// ItemGetter is the slice of dynamodbiface.DynamoDBAPI the lookup needs.
type ItemGetter interface {
	GetItemWithContext(aws.Context, *dynamodb.GetItemInput, ...request.Option) (*dynamodb.GetItemOutput, error)
}

// getItemInput constructs the single item read for cik, fetching only the
// name attribute.
func getItemInput(table string, cik string) *dynamodb.GetItemInput {
	return &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]*dynamodb.AttributeValue{
			KeyAttribute: {
				S: aws.String(cik),
			},
		},
		AttributesToGet: aws.StringSlice([]string{NameAttribute}),
	}
}

// Fetch reads the company stored under cik. It returns nil, nil when the
// table has no such item. Store failures are returned as *StoreError.
func (h *Handler) Fetch(ctx context.Context, cik string) (*Company, error) {
	out, err := h.svc.GetItemWithContext(ctx, getItemInput(h.Table, cik))
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	if out == nil || len(out.Item) == 0 {
		return nil, nil
	}

	name, err := nameText(out.Item[NameAttribute])
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading item %s from %s", cik, h.Table)
	}

	return &Company{CIK: cik, Name: name}, nil
}

// nameText renders the name attribute as the response body. Any scalar type
// is accepted; false, null, numeric zero and a missing attribute all read as
// "". Sets, lists, maps and binary values are errors.
func nameText(av *dynamodb.AttributeValue) (string, error) {
	switch {
	case av == nil:
		return "", nil
	case av.S != nil:
		return *av.S, nil
	case av.N != nil:
		f, err := strconv.ParseFloat(*av.N, 64)
		if err != nil {
			return "", errors.Wrapf(err, "invalid number '%s'", *av.N)
		}
		if f == 0 {
			return "", nil
		}
		return *av.N, nil
	case av.BOOL != nil:
		if *av.BOOL {
			return "true", nil
		}
		return "", nil
	case av.NULL != nil:
		return "", nil
	}

	return "", errors.Errorf("%s is not a scalar attribute", NameAttribute)
}
