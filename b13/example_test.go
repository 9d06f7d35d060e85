package b13_test

import (
	"fmt"

	"github.com/morcb13-bit/Artemis-B13-Archive/b13"
)

// ExampleNumber_Add mirrors the toy's original arithmetic demo: two
// balanced numerals, their sum and difference, cross-checked in decimal.
func ExampleNumber_Add() {
	num1 := b13.New(3, -2, 1) // 146
	num2 := b13.New(5, 1, -1) // -151

	fmt.Printf("num1 = %s = %d\n", num1, num1.Int64())
	fmt.Printf("num2 = %s = %d\n", num2, num2.Int64())
	fmt.Printf("sum  = %d\n", num1.Add(num2).Int64())
	fmt.Printf("diff = %d\n", num1.Sub(num2).Int64())
	// Output:
	// num1 = 3 + -2*13 + 1*13^2 = 146
	// num2 = 5 + 1*13 + -1*13^2 = -151
	// sum  = -5
	// diff = 297
}

// ExampleFibonacci shows the ratio of consecutive terms homing in on φ.
func ExampleFibonacci() {
	fib := b13.Fibonacci(12)
	ratio := float64(fib[11]) / float64(fib[10])
	fmt.Printf("F(12)/F(11) = %d/%d = %.4f\n", fib[11], fib[10], ratio)
	fmt.Printf("stable near φ: %v\n", b13.IsStableRatio(ratio, 0))
	// Output:
	// F(12)/F(11) = 144/89 = 1.6180
	// stable near φ: true
}
