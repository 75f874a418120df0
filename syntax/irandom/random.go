package irandom

// 包级函数，共享一个使用全局源的 Sampler
var defaultSampler = New()

// Default 返回包级 Sampler
func Default() *Sampler {
	return defaultSampler
}

// Int 返回 [start, end] 范围内的随机整数（闭区间）
// end < start 返回 ErrInvalidRange
func Int(start, end int) (int, error) {
	return defaultSampler.Int(start, end)
}

// Int64 返回 [start, end] 范围内的随机 int64
func Int64(start, end int64) (int64, error) {
	return defaultSampler.Int64(start, end)
}

// MustInt 已知区间合法时使用，例如常量区间
func MustInt(start, end int) int {
	return defaultSampler.MustInt(start, end)
}

// Ints 批量
func Ints(start, end, count int) ([]int, error) {
	return defaultSampler.Ints(start, end, count)
}

// Integer 可以完整放进 int64 的整数类型
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Between 泛型版本，s 为 nil 时使用包级 Sampler
func Between[T Integer](s *Sampler, start, end T) (T, error) {
	if s == nil {
		s = Default()
	}
	n, err := s.Int64(int64(start), int64(end))
	if err != nil {
		var zero T
		return zero, err
	}
	return T(n), nil
}
