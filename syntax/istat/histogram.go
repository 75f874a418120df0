package istat

import (
	"fmt"
)

// MaxOutcomes 单个直方图最多容纳的结果个数
const MaxOutcomes = 1 << 20

// Histogram 统计闭区间 [start, end] 内每个整数出现的次数
type Histogram struct {
	start  int
	end    int
	counts []int
	total  int
}

// NewHistogram 区间非法返回 error
func NewHistogram(start, end int) (*Histogram, error) {
	if end < start {
		return nil, fmt.Errorf("istat: invalid range [%d, %d]", start, end)
	}
	if uint64(int64(end)-int64(start)) >= MaxOutcomes {
		return nil, fmt.Errorf("istat: range [%d, %d] exceeds %d outcomes", start, end, MaxOutcomes)
	}
	return &Histogram{
		start:  start,
		end:    end,
		counts: make([]int, end-start+1),
	}, nil
}

// Add 记录一次结果，越界返回 error
func (h *Histogram) Add(n int) error {
	if n < h.start || n > h.end {
		return fmt.Errorf("istat: %d out of range [%d, %d]", n, h.start, h.end)
	}
	h.counts[n-h.start]++
	h.total++
	return nil
}

// AddAll 批量记录
func (h *Histogram) AddAll(ns []int) error {
	for _, n := range ns {
		if err := h.Add(n); err != nil {
			return err
		}
	}
	return nil
}

func (h *Histogram) Start() int { return h.start }
func (h *Histogram) End() int   { return h.end }
func (h *Histogram) Total() int { return h.total }

// Outcomes 可能结果的个数
func (h *Histogram) Outcomes() int {
	return len(h.counts)
}

// Count 某个值出现的次数，越界为 0
func (h *Histogram) Count(n int) int {
	if n < h.start || n > h.end {
		return 0
	}
	return h.counts[n-h.start]
}

// Frequency 观测频率
func (h *Histogram) Frequency(n int) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.Count(n)) / float64(h.total)
}

// Range 按从小到大的顺序遍历，f 返回 false 时停止
func (h *Histogram) Range(f func(n, count int) bool) {
	for i, c := range h.counts {
		if !f(h.start+i, c) {
			break
		}
	}
}
