package dfpwm_test

import (
	"fmt"

	"github.com/cwbudde/algo-dfpwm/codec/dfpwm"
)

func ExampleQuickEncode() {
	pcm := []int8{10, 20, 30, 40, 50, 60, 70, 80, -10, -20}

	packed := dfpwm.QuickEncode(pcm)
	fmt.Println(packed)

	// Output:
	// [255 0]
}

func ExampleEncoder_Encode() {
	enc, err := dfpwm.NewEncoder()
	if err != nil {
		panic(err)
	}

	pcm := make([]int8, 16)

	first := enc.Encode(pcm[:10], false)
	fmt.Println(len(first), enc.Pending())

	rest := enc.Encode(pcm[10:], true)
	fmt.Println(len(rest), enc.Pending())

	// Output:
	// 1 2
	// 1 0
}

func ExampleDecoder_Decode() {
	dec, err := dfpwm.NewDecoder()
	if err != nil {
		panic(err)
	}

	fmt.Println(dec.Decode([]byte{0xaf}))

	// Output:
	// [1 2 3 4 4 4 4 4]
}
