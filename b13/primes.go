package b13

// IsPrime reports whether n is prime by trial division.
// Complexity: O(√n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// TwinPrimes returns every pair of primes (p, p+2) with both members in
// [lo, hi]. Returns nil when the range holds none.
func TwinPrimes(lo, hi int) [][2]int {
	var primes []int
	for n := lo; n <= hi; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	var pairs [][2]int
	for i := 0; i+1 < len(primes); i++ {
		if primes[i+1]-primes[i] == 2 {
			pairs = append(pairs, [2]int{primes[i], primes[i+1]})
		}
	}

	return pairs
}

// Factorize returns the prime factorization of n in ascending order,
// with multiplicity. Returns nil for n < 2.
func Factorize(n int) []int {
	if n < 2 {
		return nil
	}
	var factors []int
	for d := 2; d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors
}
