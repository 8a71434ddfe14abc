package semver_test

import (
	"fmt"
	"log"

	"github.com/compozy/semver/pkg/semver"
)

func Example() {
	v, err := semver.New("v1.3.37-alpha.5+007")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("version:", v)
	fmt.Println("prefixed:", v.Prefixed())
	fmt.Println("next pre:", v.Clone().IncrementPreRelease())
	fmt.Println("next minor:", v.Clone().IncrementMinor())
	fmt.Println("release wins:", semver.MustNew("1.3.37").GreaterThan(v))
	// Output:
	// version: 1.3.37-alpha.5+007
	// prefixed: v1.3.37-alpha.5+007
	// next pre: 1.3.37-alpha.6+007
	// next minor: 1.4.0
	// release wins: true
}

func ExampleParse() {
	for _, s := range []string{"v1", "v1.3", "v1-alpha.5", "v1.3+007"} {
		v, err := semver.Parse(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(v)
	}
	// Output:
	// 1.0.0
	// 1.3.0
	// 1.0.0-alpha.5
	// 1.3.0+007
}

func ExampleCompareAt() {
	a, b := semver.MustNew("1.3.37-alpha.5"), semver.MustNew("1.3.37-alpha.4")
	fmt.Println(semver.CompareAt(a, b, semver.PrecisionMinor))
	fmt.Println(semver.CompareAt(a, b, semver.PrecisionFull))
	// Output:
	// 0
	// 1
}
