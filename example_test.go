package simdex_test

import (
	"fmt"

	"github.com/hupe1980/simdex"
)

func ExampleHamming() {
	a := []byte{0b00000000}
	b := []byte{0b00000011}

	fmt.Println(simdex.Hamming(a, b))
	// Output: 2
}

func ExampleFindSimilarPairs() {
	sigs := [][]byte{{0x00}, {0x01}, {0xFF}}

	for _, p := range simdex.FindSimilarPairs(sigs, 1, 0) {
		fmt.Printf("i=%d j=%d dist=%d\n", p.I, p.J, p.Dist)
	}
	// Output: i=0 j=1 dist=1
}

func ExampleNew() {
	idx, err := simdex.New(
		simdex.WithBands(4),
		simdex.WithBitsPerBand(4),
	)
	if err != nil {
		panic(err)
	}
	defer idx.Close()

	sig := []byte{0xAB, 0xCD}
	if _, err := idx.Add(sig); err != nil {
		panic(err)
	}
	if _, err := idx.Add(sig); err != nil {
		panic(err)
	}

	results, err := idx.Query(sig, 0)
	if err != nil {
		panic(err)
	}
	for _, r := range results {
		fmt.Printf("id=%d dist=%d\n", r.ID, r.Distance)
	}
	// Output:
	// id=0 dist=0
	// id=1 dist=0
}
