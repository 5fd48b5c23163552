package masscan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go-masscan/config/constant"
	"os/exec"
	"strings"
	"time"
)

// elevationCommand 提权包装命令，测试中会替换掉
var elevationCommand = constant.SudoCommand

// waitDelay ctx 结束或者进程退出后，最多再等多久让 stdout 关闭
var waitDelay = time.Second

// command 返回真正要执行的程序和参数
// 开启 sudo 时，masscan 的路径作为 sudo 的第一个参数
func (m Masscan) command() (string, []string) {
	args := m.Args()
	if m.Sudo {
		return elevationCommand, append([]string{m.SystemPath}, args...)
	}
	return m.SystemPath, args
}

// Run 运行 masscan 并等待它退出，返回解析好的扫描结果
// 整个扫描期间会阻塞，没有超时
func (m Masscan) Run() ([]Info, error) {
	return m.RunContext(context.Background())
}

// RunContext 和 Run 一样，ctx 结束时会杀掉 masscan 进程
func (m Masscan) RunContext(ctx context.Context) ([]Info, error) {
	tag := fmt.Sprintf("[Masscan-%s]", uuid.NewString()[:8])
	status := constant.RunConfigured
	transition := func(next constant.RunStatus) {
		logger.Debugf("%s %s -> %s", tag, status, next)
		status = next
	}

	transition(constant.RunSpawning)
	name, args := m.command()
	cmd := exec.CommandContext(ctx, name, args...)
	// sudo 被杀掉之后 masscan 可能还占着 stdout，不能一直等下去
	// 没有 ctx 时不设置，进程正常退出后必须把 stdout 读完
	if ctx.Done() != nil {
		cmd.WaitDelay = waitDelay
	}
	logger.Debugf("%s CMD: %s", tag, cmd.String())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		transition(constant.RunFailed)
		logger.Errorf("%s Error when start cmd, error: %+v", tag, err)
		return nil, &ProcessSpawnError{Op: "start", Path: name, Cause: err}
	}

	transition(constant.RunExecuting)
	err := cmd.Wait()
	transition(constant.RunCapturing)
	if ctxErr := ctx.Err(); ctxErr != nil {
		transition(constant.RunFailed)
		logger.Errorf("%s masscan killed, error: %+v", tag, ctxErr)
		return nil, fmt.Errorf("masscan run aborted: %w", ctxErr)
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		// 某些错误退出的情况下 masscan 依然会输出 JSON，继续解析
		logger.Warnf("%s masscan exit with code %d, stderr: %s", tag, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
	case errors.Is(err, exec.ErrWaitDelay):
		// 进程已经退出，只是还有子进程占着 stdout，已经读到的内容照样解析
		logger.Warnf("%s masscan exited but stdout is still held open, error: %+v", tag, err)
	default:
		transition(constant.RunFailed)
		logger.Errorf("%s Error when wait cmd, error: %+v", tag, err)
		return nil, &ProcessSpawnError{Op: "wait", Path: name, Cause: err}
	}
	logger.Debugf("%s stdout: %d bytes, stderr: %s", tag, stdout.Len(), strings.TrimSpace(stderr.String()))

	transition(constant.RunDecoding)
	result, err := Decode(stdout.Bytes())
	if err != nil {
		transition(constant.RunFailed)
		logger.Errorf("%s Error when decode output, error: %+v", tag, err)
		return nil, err
	}

	transition(constant.RunSucceeded)
	logger.Infof("%s %d hosts found.", tag, len(result))
	return result, nil
}
