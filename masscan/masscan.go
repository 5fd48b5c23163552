// Package masscan 负责拼接 masscan 的命令行参数、运行 masscan 并解析 -oJ 输出。
//
// 基本用法：
//
//	mas := masscan.Masscan{}.
//		SetSystemPath("/usr/local/bin/masscan").
//		SetPorts("22,8080-8100").
//		SetRanges("10.0.0.0/24,10.0.1.1-10.0.1.100").
//		SetRate("10000").
//		SetOtherArgs([]string{"--banners"})
//	result, err := mas.Run()
package masscan

import (
	"go-masscan/logging"
	"strings"
)

var logger = logging.GetSugar()

// Masscan 一次扫描的配置
// 所有的 Set 方法都返回修改后的副本，不会影响调用者手里的原值
type Masscan struct {
	// masscan 可执行文件的路径
	SystemPath string

	// 是否通过 sudo 运行
	Sudo bool

	// 端口，例如 22,8080-8100
	Ports string

	// 扫描目标，逗号分隔的 IP、CIDR 或者 IP 段
	Ranges string

	// 发包速率，packets/sec
	Rate string

	// 排除的目标，为空时不传 --exclude
	Exclude string

	// 原样透传给 masscan 的其他参数
	OtherArgs []string
}

func (m Masscan) SetSystemPath(systemPath string) Masscan {
	m.SystemPath = systemPath
	return m
}

// SetSudo 通过 sudo 运行 masscan
func (m Masscan) SetSudo() Masscan {
	m.Sudo = true
	return m
}

func (m Masscan) SetPorts(ports string) Masscan {
	m.Ports = ports
	return m
}

func (m Masscan) SetRanges(ranges string) Masscan {
	m.Ranges = ranges
	return m
}

func (m Masscan) SetRate(rate string) Masscan {
	m.Rate = rate
	return m
}

func (m Masscan) SetExclude(exclude string) Masscan {
	m.Exclude = exclude
	return m
}

// SetOtherArgs 替换全部的透传参数，args 会被复制一份
func (m Masscan) SetOtherArgs(args []string) Masscan {
	m.OtherArgs = append([]string(nil), args...)
	return m
}

// Args 生成传给 masscan 的参数列表，不包含可执行文件本身
// --wait 0 让 masscan 发完包立刻退出，-oJ - 把 JSON 结果输出到 stdout
func (m Masscan) Args() []string {
	args := make([]string, 0, 12+len(m.OtherArgs))
	args = append(args, "-p", m.Ports, "--range", m.Ranges)
	args = append(args, m.OtherArgs...)
	args = append(args, "--rate", m.Rate)
	if m.Exclude != "" {
		args = append(args, "--exclude", m.Exclude)
	}
	args = append(args, "--wait", "0", "-oJ", "-")
	return args
}

// String 返回完整的命令行，只用于日志
func (m Masscan) String() string {
	name, args := m.command()
	return strings.Join(append([]string{name}, args...), " ")
}
