// Package lookup implements the company lookup lambda: an api gateway proxy
// handler that resolves a SEC cik to a company name stored in dynamodb.
//
// A GET request with a cik query parameter reads the item's name attribute
// and returns it as the body. Every other method is rejected. Failures are
// answered with a 400 whose body is the error message. The Content-Type
// header always claims application/json even though the body is plain text;
// existing callers depend on that.
package lookup
