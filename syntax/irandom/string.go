package irandom

// Letter 随机字符串使用的字母表
type Letter string

// 常用字母表
const (
	LetterAbc            = Letter("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	LetterAbcLower       = Letter("abcdefghijklmnopqrstuvwxyz")
	LetterAbcUpper       = Letter("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	LetterNum            = Letter("0123456789")
	LetterNumAndLowAbc   = Letter("abcdefghijklmnopqrstuvwxyz0123456789")
	LetterNumAndUpperAbc = Letter("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	LetterAll            = Letter("abcdefghijklmnopqrstuvwxyz0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

// String 每个字符的下标都在 [0, len(letters)-1] 内均匀取
func (s *Sampler) String(length int, letters Letter) string {
	if length <= 0 || len(letters) == 0 {
		return ""
	}

	last := int64(len(letters) - 1)
	b := make([]byte, length)
	for i := range b {
		// 区间恒合法，忽略 err
		idx, _ := s.Int64(0, last)
		b[i] = letters[idx]
	}
	return string(b)
}

// RandString 使用包级 Sampler
func RandString(length int, letters Letter) string {
	return defaultSampler.String(length, letters)
}

// RandBytes 生成随机字节切片（加密级安全）
// 与 CryptoSource 相同，系统随机源不可用时 panic
func RandBytes(length int) []byte {
	if length < 1 {
		return []byte{}
	}
	b := make([]byte, length)
	readCrypto(b)
	return b
}
