package odoo

import (
	stderrors "errors"

	"github.com/kolo/xmlrpc"
)

// IsFault reports whether err was caused by a server-side application fault
// (malformed call, permission denial, business-rule violation) rather than a
// transport failure.
func IsFault(err error) bool {
	var fault xmlrpc.FaultError
	return stderrors.As(err, &fault)
}

// FaultOf returns the underlying server fault and true when err was caused by
// one.
func FaultOf(err error) (xmlrpc.FaultError, bool) {
	var fault xmlrpc.FaultError
	ok := stderrors.As(err, &fault)
	return fault, ok
}
