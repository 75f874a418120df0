package ilog

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New 创建 logger，format 为 json 时输出 JSON，其他情况输出人类可读格式
// level 无法识别时回退到 info
func New(w io.Writer, level, format string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if !strings.EqualFold(format, "json") {
		// 只有直接写终端时才上色
		noColor := w != os.Stderr && w != os.Stdout
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: noColor}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel 大小写不敏感
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
