package enumerate_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/turingbeaver/enumerate"
)

func ExampleRun() {
	dir, err := os.MkdirTemp("", "turingbeaver-enumerate-example")
	if err != nil {
		fmt.Println(err)

		return
	}
	defer os.RemoveAll(dir)

	summary, err := enumerate.Run(context.Background(), 2, 2, enumerate.WithMaxSteps(200), enumerate.WithOutputDir(dir))
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(summary.Visited > 0)
	// Output:
	// true
}
