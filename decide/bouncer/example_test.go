package bouncer_test

import (
	"fmt"

	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/decide/bouncer"
	"github.com/katalvlaran/turingbeaver/machine"
	"github.com/katalvlaran/turingbeaver/rule"
)

func ExampleFind() {
	r, _ := rule.Parse(rule.Known["quad-bouncer"])
	m := machine.New(r, nil)

	res, err := bouncer.Find(m, decide.DefaultBudget(500_000))
	fmt.Println(err == nil && res.Degree >= 0)
	// Output:
	// true
}
