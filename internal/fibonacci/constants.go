package fibonacci

const (
	// MaxIndex is the largest index accepted by every calculator. The
	// recursive algorithm uses one stack frame per index step; 100,000 frames
	// stay well inside the default goroutine stack limit.
	MaxIndex = 100_000

	// DefaultAlgorithm is the calculator used by TryResolve and by the CLI
	// when no algorithm is selected.
	DefaultAlgorithm = "recursive"

	// OverflowIndex is the first index whose pair no longer fits in a 64-bit
	// int: Fib(92).Current = F(93) exceeds math.MaxInt64.
	OverflowIndex = 92
)
