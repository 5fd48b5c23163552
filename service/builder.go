package service

import (
	"bufio"
	"fmt"
	"go-masscan/config"
	"go-masscan/config/constant"
	"io"
	"net"
	"os"
	"strings"
)

// TaskBuilder 收集扫描目标，生成 masscan 的 --range 参数
type TaskBuilder struct {

	// 引擎状态
	Status constant.EngineStatus

	appConfig *config.AppConfig
}

// NewTaskBuilder 构造一个新的 TaskBuilder
func NewTaskBuilder(appConfig *config.AppConfig) *TaskBuilder {
	return &TaskBuilder{
		Status:    constant.EngineInit,
		appConfig: appConfig,
	}
}

// Run 读取 target 或者 input 文件，返回逗号拼接的目标列表
func (b *TaskBuilder) Run() (string, error) {
	defer func() {
		logger.Debugf("TaskBuilder defer() called.")
		b.Status = constant.EngineStop
	}()
	b.Status = constant.EngineRunning

	var targets []string
	if b.appConfig.Target != "" {
		for _, target := range strings.Split(b.appConfig.Target, ",") {
			target = strings.TrimSpace(target)
			if target == "" {
				continue
			}
			if !IsTarget(target) {
				return "", fmt.Errorf("illegal target: %s", target)
			}
			targets = append(targets, target)
		}
	} else if b.appConfig.InputFile != "" {
		fp, err := os.Open(b.appConfig.InputFile)
		if err != nil {
			return "", fmt.Errorf("open input file %s: %w", b.appConfig.InputFile, err)
		}
		defer func(fp *os.File) {
			_ = fp.Close()
		}(fp)

		targets, err = readTargets(fp)
		if err != nil {
			return "", fmt.Errorf("read input file %s: %w", b.appConfig.InputFile, err)
		}
	} else {
		// 输入有问题，结束
		return "", fmt.Errorf("target and input file cannot be empty at the same time")
	}

	if len(targets) == 0 {
		return "", fmt.Errorf("no target to scan")
	}
	logger.Infof("%d targets were successfully added.", len(targets))
	return strings.Join(targets, ","), nil
}

// readTargets 一行一个目标，跳过空行和 # 开头的注释，非法目标只记录日志
func readTargets(r io.Reader) ([]string, error) {
	targets := make([]string, 0)
	bufferReader := bufio.NewReader(r)
	for {
		line, err := bufferReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			if IsTarget(line) {
				targets = append(targets, line)
			} else {
				logger.Errorf("Illegal target found: %s, skip it.", line)
			}
		}

		if err == io.EOF {
			break
		}
	}
	return targets, nil
}

// IsTarget 检查是否是 masscan 能识别的目标：IP、CIDR 或者 IP 段
func IsTarget(target string) bool {
	if net.ParseIP(target) != nil {
		return true
	}
	if _, _, err := net.ParseCIDR(target); err == nil {
		return true
	}
	parts := strings.Split(target, "-")
	if len(parts) != 2 {
		return false
	}
	begin, end := net.ParseIP(strings.TrimSpace(parts[0])), net.ParseIP(strings.TrimSpace(parts[1]))
	return begin != nil && end != nil && (begin.To4() == nil) == (end.To4() == nil)
}
