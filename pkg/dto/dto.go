// Package dto defines the read and write shapes shared by the
// repositories, services, and HTTP layer.
package dto

import "github.com/shopspring/decimal"

func init() {
	// Money fields serialize as JSON numbers, the format the frontend
	// already consumes.
	decimal.MarshalJSONWithoutQuotes = true
}
