package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable pipeline out of transforms.
// Prefer it over repeated Apply calls when the same chain runs on every keystroke.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// UntilStable reapplies transform until its output stops changing.
// The transform must never grow its input, otherwise the loop may not terminate.
func UntilStable(transform func(string) string) func(string) string {
	return func(s string) string {
		for {
			next := transform(s)
			if next == s {
				return s
			}
			s = next
		}
	}
}
