package contract

import (
	"fmt"

	"dapp_token/sdk"
)

// strptr is the convenience helper for entrypoint return values.
func strptr(s string) *string { return &s }

// abortf formats and aborts in one step.
func abortf(format string, args ...interface{}) {
	sdk.Abort(fmt.Sprintf(format, args...))
}
