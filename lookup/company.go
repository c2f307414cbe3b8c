package lookup

const (
	// KeyAttribute is the partition key of the lookup table, and the query
	// string parameter carrying it.
	KeyAttribute = "cik"

	// NameAttribute is the only attribute the lookup reads.
	NameAttribute = "name"
)

// Company is an item of the lookup table.
type Company struct {
	CIK    string `dynamodbav:"cik" json:"cik"`
	Name   string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Ticker string `dynamodbav:"ticker,omitempty" json:"ticker,omitempty"`
}
