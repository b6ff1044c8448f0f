// Package checks bundles the built-in checks.
package checks

import (
	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doclint/checks/emptydescription"
	"go.jacobcolvin.com/doclint/doclint/checks/firstsentence"
	"go.jacobcolvin.com/doclint/doclint/checks/htmlstyle"
	"go.jacobcolvin.com/doclint/doclint/checks/paramorder"
	"go.jacobcolvin.com/doclint/doclint/checks/preferinlinetags"
	"go.jacobcolvin.com/doclint/doclint/checks/tagorder"
	"go.jacobcolvin.com/doclint/doclint/checks/tagplacement"
)

// DefaultRegistry returns a registry holding every built-in check.
func DefaultRegistry() doclint.Registry {
	r := doclint.Registry{}
	r.Add(
		func() doclint.Check { return emptydescription.New() },
		func() doclint.Check { return firstsentence.New() },
		func() doclint.Check { return htmlstyle.New() },
		func() doclint.Check { return paramorder.New() },
		func() doclint.Check { return preferinlinetags.New() },
		func() doclint.Check { return tagorder.New() },
		func() doclint.Check { return tagplacement.New() },
	)

	return r
}
