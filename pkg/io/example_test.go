package io_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/genomeviz/pkg/io"
	"github.com/matzehuels/genomeviz/pkg/network"
)

func ExampleWriteJSON() {
	net := network.New()
	net.AddNode(1, network.Input)
	net.AddNode(2, network.Output)
	net.AddLink(1, 2, 3.0)

	g, err := net.BuildGraph()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := io.WriteJSON(g, os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// {
	//   "nodes": [
	//     {
	//       "id": 1,
	//       "attrs": {
	//         "color": "blue"
	//       }
	//     },
	//     {
	//       "id": 2,
	//       "attrs": {
	//         "color": "red"
	//       }
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "from": 1,
	//       "to": 2,
	//       "attrs": {
	//         "weight": 1.5
	//       }
	//     }
	//   ]
	// }
}

func ExampleLookup() {
	for _, name := range []string{"GraphML", "DOT"} {
		op, err := io.Lookup(name)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(op.Name, "->", op.Extension)
	}
	// Output:
	// GraphML -> graphml
	// UNSUPPORTED: Unsupported operation requested: DOT
}
