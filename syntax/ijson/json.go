package ijson

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// 使用 ConfigCompatibleWithStandardLibrary 确保与标准库行为一致
var parser = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode 编码
func Encode(v interface{}) ([]byte, error) {
	return parser.Marshal(v)
}

// Decode 解码
func Decode(data []byte, v interface{}) error {
	return parser.Unmarshal(data, v)
}

// Pretty 格式化输出，缩进 4 空格
func Pretty(v interface{}) (string, error) {
	out, err := parser.MarshalIndent(v, "", "    ")
	return string(out), err
}

// Write 编码后写入 w，末尾带换行
func Write(w io.Writer, v interface{}, pretty bool) error {
	enc := parser.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "    ")
	}
	return enc.Encode(v)
}
