package command

import (
	"fmt"
	"reflect"
	"strings"
)

// safeCall executes fn with panic recovery. A panicking handler is reported
// as an ordinary failure so the pipeline's event guarantees hold.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return fn()
}

// ErrorString renders err as "TypeName: message" (e.g. "ValueError: bad"),
// or just the type name when the message is empty. Errors built by the
// errors and fmt packages carry no meaningful type name and render as their
// message alone. Intended for event consumers that present failures to users.
func ErrorString(err error) string {
	if err == nil {
		return ""
	}
	name := errTypeName(err)
	msg := strings.TrimSpace(err.Error())
	switch {
	case name == "":
		return msg
	case msg == "":
		return name
	default:
		return name + ": " + msg
	}
}

func errTypeName(err error) string {
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	// Stock stdlib error types (errors.New, fmt.Errorf) have internal names
	// that mean nothing to users.
	if pkg := t.PkgPath(); pkg == "errors" || pkg == "fmt" {
		return ""
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
