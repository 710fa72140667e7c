package novaapi

import (
	"sort"
	"strings"
)

type EndpointKind int

const (
	EndpointUnknown EndpointKind = iota
	EndpointMarket
	EndpointPrivate
)

func (k EndpointKind) String() string {
	switch k {
	case EndpointMarket:
		return "market"
	case EndpointPrivate:
		return "private"
	}

	return "unknown"
}

const marketPrefix = "market"

// PublicMethods are the market method paths, wrappers append further path arguments.
var PublicMethods = []string{
	"markets",
	"market/info",
	"market/orderhistory",
	"market/openorders",
}

var privateMethods = map[string]struct{}{
	"getbalances":          {},
	"getbalance":           {},
	"getdeposits":          {},
	"getwithdrawals":       {},
	"getnewdepositaddress": {},
	"getdepositaddress":    {},
	"myopenorders":         {},
	"myopenorders_market":  {},
	"cancelorder":          {},
	"withdraw":             {},
	"trade":                {},
	"tradehistory":         {},
	"getdeposithistory":    {},
	"getwithdrawalhistory": {},
	"walletstatus":         {},
}

// PrivateMethods returns the sorted private method names.
func PrivateMethods() []string {
	names := make([]string, 0, len(privateMethods))
	for name := range privateMethods {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func IsPrivateMethod(name string) bool {
	_, ok := privateMethods[name]
	return ok
}

// Classify decides the endpoint kind from the first path segment of method.
// A segment starting with "market" is a market method, even "marketsfoo".
// Only exact members of the private set are private.
func Classify(method string) EndpointKind {
	segment, _, _ := strings.Cut(method, "/")
	if len(segment) == 0 {
		return EndpointUnknown
	}

	if strings.HasPrefix(segment, marketPrefix) {
		return EndpointMarket
	}

	if IsPrivateMethod(segment) {
		return EndpointPrivate
	}

	return EndpointUnknown
}

// joinPath joins the method name and its path arguments with "/".
func joinPath(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), "/")
}
