package linter

// builtinRules lists every rule shipped with this package. It's
// deliberately small — this module carries no opinionated rule catalog —
// but eqeqeq is kept as the worked example a consumer would model a real
// rule catalog on.
var builtinRules = []Rule{
	&EqEqEq{},
}
