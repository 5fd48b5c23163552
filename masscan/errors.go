package masscan

import (
	"fmt"
)

// ErrorCode 区分 Run 失败的原因
type ErrorCode string

const (
	CodeProcessSpawn ErrorCode = "PROCESS_SPAWN"
	CodeEncoding     ErrorCode = "ENCODING"
	CodeOutputParse  ErrorCode = "OUTPUT_PARSE"
)

// ProcessSpawnError masscan 进程无法启动：文件不存在、没有执行权限或者系统调用失败
// Op 为 start 时进程没有启动起来，为 wait 时是等待进程退出失败
type ProcessSpawnError struct {
	Op    string
	Path  string
	Cause error
}

func (e *ProcessSpawnError) Error() string {
	if e.Op == "wait" {
		return fmt.Sprintf("[%s] wait for %s: %v", CodeProcessSpawn, e.Path, e.Cause)
	}
	return fmt.Sprintf("[%s] cannot start %s: %v", CodeProcessSpawn, e.Path, e.Cause)
}

func (e *ProcessSpawnError) Unwrap() error {
	return e.Cause
}

// EncodingError stdout 不是合法的 UTF-8 文本
type EncodingError struct {
	// Offset 第一个非法字节的位置
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("[%s] output is not valid utf-8 at byte %d", CodeEncoding, e.Offset)
}

// OutputParseError stdout 不是合法的 JSON，或者数组中的某个元素不符合 Info 的结构
type OutputParseError struct {
	// Index 出错元素的下标，整个文档无法解析时为 -1
	Index int
	Cause error
}

func (e *OutputParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("[%s] output is not valid json: %v", CodeOutputParse, e.Cause)
	}
	return fmt.Sprintf("[%s] cannot decode result #%d: %v", CodeOutputParse, e.Index, e.Cause)
}

func (e *OutputParseError) Unwrap() error {
	return e.Cause
}
