package main

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/vecbool"
)

func main() {
	seed := int64(4711)
	size := 1 << 20

	rng := rand.New(rand.NewSource(seed))

	// Build a large presence mask one element at a time.
	mask := vecbool.NewWithCapacity(size)
	for i := 0; i < size; i++ {
		mask.Push(rng.Intn(10) == 0)
	}

	fmt.Printf("elements: %d\n", mask.Len())
	fmt.Printf("present:  %d\n", mask.Count())
	fmt.Printf("storage:  %d bytes (vs %d for []bool)\n", mask.Cap()/8, mask.Len())

	// Drain the tail; storage shrinks chunk by chunk.
	for i := 0; i < size/2; i++ {
		mask.Pop()
	}
	fmt.Printf("after pops: %d elements, %d bytes\n", mask.Len(), mask.Cap()/8)

	// Forward scan of the remaining elements.
	present := 0
	for value := range mask.Iterator() {
		if value {
			present++
		}
	}
	fmt.Printf("scan:     %d present\n", present)
}
