package mathutil

// Sum returns the sum of the numbers.
func Sum(nums ...int) int {
	s := 0
	for _, n := range nums {
		s += n
	}
	return s
}

// PrefixSums returns the running totals of nums: element i is the sum of
// nums[0] through nums[i].
func PrefixSums(nums ...int) []int {
	out := make([]int, 0, len(nums))
	s := 0
	for _, n := range nums {
		s += n
		out = append(out, s)
	}
	return out
}

// Factorial returns n! computed recursively; panics for negative n.
func Factorial(n int) int {
	if n < 0 {
		panic("mathutil: factorial of negative number")
	}
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}
