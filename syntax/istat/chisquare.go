package istat

import "math"

// z 分位数，α = 0.001 单侧
const z999 = 3.090232

// ChiSquare 相对均匀分布的卡方统计量
func ChiSquare(h *Histogram) float64 {
	if h.total == 0 || len(h.counts) == 0 {
		return 0
	}
	expected := float64(h.total) / float64(len(h.counts))

	var sum float64
	for _, c := range h.counts {
		d := float64(c) - expected
		sum += d * d / expected
	}
	return sum
}

// CriticalValue 自由度 df、α = 0.001 时的卡方临界值
// Wilson–Hilferty 近似，df >= 1 时误差在百分之几以内，且偏保守
func CriticalValue(df int) float64 {
	if df < 1 {
		return 0
	}
	k := float64(df)
	a := 2 / (9 * k)
	return k * math.Pow(1-a+z999*math.Sqrt(a), 3)
}

// Uniform 卡方检验是否接受“均匀分布”假设
// 只有一个可能结果时恒为 true
func Uniform(h *Histogram) bool {
	df := h.Outcomes() - 1
	if df < 1 {
		return true
	}
	return ChiSquare(h) <= CriticalValue(df)
}
