package irandom

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"sync"
)

// Source 提供 [0, 1) 区间内均匀分布的浮点数
type Source interface {
	Float64() float64
}

// SourceFunc 把普通函数适配成 Source，测试时用来注入固定值
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }

// globalSource 直接使用 math/rand/v2 的全局生成器（ChaCha8，自动播种，并发安全）
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// GlobalSource 默认源
func GlobalSource() Source {
	return globalSource{}
}

// seededSource 固定种子，序列可复现
// *rand.Rand 本身不是并发安全的，这里加锁
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource 相同 seed 产生相同序列
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

const (
	floatBits  = 53
	floatScale = 1.0 / (1 << floatBits)
)

// cryptoReader 测试时替换
var cryptoReader io.Reader = crand.Reader

// readCrypto 填满 b
// 包内所有加密随机读取都走这里：读取失败说明系统随机源不可用，直接 panic
func readCrypto(b []byte) {
	if _, err := io.ReadFull(cryptoReader, b); err != nil {
		panic("irandom: crypto/rand read failed: " + err.Error())
	}
}

type cryptoSource struct{}

// CryptoSource 加密级随机源
func CryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	readCrypto(buf[:])
	// 取高 53 位作为尾数
	return float64(binary.LittleEndian.Uint64(buf[:])>>(64-floatBits)) * floatScale
}
