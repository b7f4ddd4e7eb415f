//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=broker_test
package broker

import "net/http"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
