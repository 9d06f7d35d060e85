package b13

// Fibonacci returns the first n Fibonacci terms starting 1, 1, 2, 3, ...
// Returns nil for n ≤ 0 (data helpers return nil on invalid input).
// Complexity: O(n).
func Fibonacci(n int) []int64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int64{1}
	}
	fib := make([]int64, n)
	fib[0], fib[1] = 1, 1
	for i := 2; i < n; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}

	return fib
}

// Lucas returns the first n Lucas terms starting 2, 1, 3, 4, 7, ...
// Returns nil for n ≤ 0.
// Complexity: O(n).
func Lucas(n int) []int64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int64{2}
	}
	luc := make([]int64, n)
	luc[0], luc[1] = 2, 1
	for i := 2; i < n; i++ {
		luc[i] = luc[i-1] + luc[i-2]
	}

	return luc
}

// InverseFibonacci returns the first n Fibonacci terms in descending
// order, e.g. n=10 → [55 34 21 13 8 5 3 2 1 1]. Used as the weight ladder
// for DistributeErrorFibonacci. Returns nil for n ≤ 0.
func InverseFibonacci(n int) []int64 {
	fib := Fibonacci(n)
	for l, r := 0, len(fib)-1; l < r; l, r = l+1, r-1 {
		fib[l], fib[r] = fib[r], fib[l]
	}

	return fib
}

// MagicNumber returns 2n², the shell-stability "magic" sequence
// 2, 8, 18, 32, 50, 72, ...
func MagicNumber(n int) int { return 2 * n * n }
