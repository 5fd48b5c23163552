package masscan

import (
	"bytes"
	"encoding/json"
	"errors"
	jsonv2 "github.com/go-json-experiment/json"
	"unicode/utf8"
)

var errNullResult = errors.New("result is null")

// Decode 解析 masscan -oJ 的输出
//
// 输出为空或者顶层不是数组时认为没有扫到主机，返回空结果；
// 数组中只要有一个元素不符合 Info 的结构，整体失败。
func Decode(output []byte) ([]Info, error) {
	if offset := invalidUTF8Offset(output); offset >= 0 {
		return nil, &EncodingError{Offset: offset}
	}

	result := make([]Info, 0)
	if len(bytes.TrimSpace(output)) == 0 {
		return result, nil
	}

	var document json.RawMessage
	if err := json.Unmarshal(output, &document); err != nil {
		return nil, &OutputParseError{Index: -1, Cause: err}
	}
	if trimmed := bytes.TrimSpace(document); len(trimmed) == 0 || trimmed[0] != '[' {
		return result, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(document, &items); err != nil {
		return nil, &OutputParseError{Index: -1, Cause: err}
	}
	for idx, item := range items {
		// null 写入 struct 不会报错，这里单独拦下来
		if bytes.Equal(item, []byte("null")) {
			return nil, &OutputParseError{Index: idx, Cause: errNullResult}
		}
		// encoding/json 匹配字段名时不区分大小写，这里用 v2 严格按 ip、ports 这些名字匹配
		var info Info
		if err := jsonv2.Unmarshal(item, &info); err != nil {
			return nil, &OutputParseError{Index: idx, Cause: err}
		}
		result = append(result, info)
	}
	return result, nil
}

// invalidUTF8Offset 返回第一个非法 UTF-8 字节的位置，全部合法时返回 -1
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return -1
}
