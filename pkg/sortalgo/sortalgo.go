// Package sortalgo implements the five sorting algorithms under evaluation
// behind one contract.
//
// Every implementation sorts in place and returns the same slice it was
// given. Nil, empty and single-element slices are returned untouched.
// Callers that need the unsorted values afterwards must copy first.
package sortalgo

import (
	"errors"
	"fmt"
)

// Name identifies an algorithm in benchmark series and reports.
type Name string

// The fixed algorithm identifiers.
const (
	Bubble    Name = "BubbleSort"
	Insertion Name = "InsertionSort"
	Selection Name = "SelectionSort"
	Merge     Name = "MergeSort"
	Quick     Name = "QuickSort"
)

// ErrUnknownAlgorithm is returned by ByName for an unrecognised name.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithm sorts a sequence of ints into non-descending order.
type Algorithm interface {
	// Name returns the fixed identifier of the algorithm.
	Name() Name
	// Sort sorts s in place and returns s.
	Sort(s []int) []int
}

// All returns the five algorithms in measurement order.
func All() []Algorithm {
	return []Algorithm{
		InsertionSort{},
		SelectionSort{},
		BubbleSort{},
		MergeSort{},
		QuickSort{},
	}
}

// Names returns the identifiers of All in the same order.
func Names() []Name {
	algs := All()
	names := make([]Name, len(algs))
	for i, a := range algs {
		names[i] = a.Name()
	}
	return names
}

// ByName resolves an algorithm identifier.
func ByName(name string) (Algorithm, error) {
	for _, a := range All() {
		if string(a.Name()) == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func trivial(s []int) bool {
	return len(s) < 2
}
