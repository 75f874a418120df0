package irandom

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange end < start
	ErrInvalidRange = errors.New("irandom: invalid range, end must be >= start")
	// ErrInvalidCount 批量数量为负
	ErrInvalidCount = errors.New("irandom: invalid count, must be >= 0")
)

// Sampler 在闭区间 [start, end] 内均匀取整数
type Sampler struct {
	src Source
}

// Option ======================================== Functional Options ========================================
type Option func(s *Sampler)

// WithSource 自定义随机源
func WithSource(src Source) Option {
	return func(s *Sampler) {
		if src != nil {
			s.src = src
		}
	}
}

// WithSeed 固定种子，便于复现
func WithSeed(seed uint64) Option {
	return WithSource(NewSeededSource(seed))
}

// WithCrypto 使用 crypto/rand
func WithCrypto() Option {
	return WithSource(CryptoSource())
}

// ======================================== Functional Options End ========================================

// New 默认使用 math/rand/v2 全局源
func New(opts ...Option) *Sampler {
	s := &Sampler{src: GlobalSource()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Int64 返回 [start, end] 范围内的随机整数，两端都可能取到
//
// 算法：u ∈ [0,1)，n = floor(u * (end-start+1)) + start
// span 用 uint64 计算，MinInt64..MaxInt64 这种全范围也不会溢出；
// span 超过 2^53 时 float64 精度不足，乘积可能被舍入到 span+1，这里截断到 span
func (s *Sampler) Int64(start, end int64) (int64, error) {
	if end < start {
		return 0, errors.Wrapf(ErrInvalidRange, "start=%d end=%d", start, end)
	}

	span := uint64(end) - uint64(start)
	if span == 0 {
		return start, nil
	}

	u := s.src.Float64()
	offset := math.Floor(u * (float64(span) + 1))

	var off uint64
	// NaN 两个比较都不成立，统一落到 0
	switch {
	case !(offset > 0):
		off = 0
	case offset >= float64(span):
		off = span
	default:
		off = uint64(offset)
	}

	// 补码回绕加法，结果必在 [start, end] 内
	return int64(uint64(start) + off), nil
}

// Int 同 Int64
func (s *Sampler) Int(start, end int) (int, error) {
	n, err := s.Int64(int64(start), int64(end))
	return int(n), err
}

// MustInt 区间非法时 panic
func (s *Sampler) MustInt(start, end int) int {
	n, err := s.Int(start, end)
	if err != nil {
		panic(err)
	}
	return n
}

// Ints 批量取 count 个
func (s *Sampler) Ints(start, end, count int) ([]int, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "count=%d", count)
	}
	if end < start {
		return nil, errors.Wrapf(ErrInvalidRange, "start=%d end=%d", start, end)
	}

	out := make([]int, count)
	for i := range out {
		n, err := s.Int(start, end)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
