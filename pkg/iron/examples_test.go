package iron_test

import (
	"fmt"

	"github.com/arcterus/iron/pkg/iron"
)

func ExampleEngine_Eval() {
	e := iron.New()
	res, err := e.Eval(`(print "hello, " "iron")`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(res.Output)
	// Output:
	// hello, iron
}

func ExampleEngine_Eval_closure() {
	e := iron.New()
	res, err := e.Eval(`(define inc (fn [x] (+ x 1))) (inc 41)`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Value.String())
	// Output:
	// 42
}

func ExampleDump() {
	out, err := iron.Dump(`(+ 1 2)`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(out)
	// Output:
	// Root {
	//   Sexpr {
	//     Ident
	//       +
	//     Integer
	//       1
	//     Integer
	//       2
	//   }
	// }
}
