// Package macro renders xacro macro-invocation strings for classified
// sensor transformations and maps each sensor kind to the include file its
// macro lives in.
package macro

import (
	"fmt"

	"xacro-compiler/internal/calibration"
)

// Expr is a deferred-lookup expression: a textual placeholder the downstream
// xacro configuration-loading step resolves against the calibration value
// table when the robot description is loaded. The compiler embeds Exprs
// verbatim and never evaluates them; they are deliberately a distinct type
// from literal numeric values.
type Expr string

// LookupExpr builds the deferred-lookup expression for one offset component
// of the base/child frame pair.
func LookupExpr(baseFrame, childFrame, field string) Expr {
	return Expr(fmt.Sprintf("${calibration['%s']['%s']['%s']}", baseFrame, childFrame, field))
}

// Offset returns the deferred-lookup expression for the named offset field
// of t.
func Offset(t *calibration.Transformation, field string) Expr {
	return LookupExpr(t.BaseFrame, t.ChildFrame, field)
}
