package constant

type EngineStatus int8

const (
	EngineInit    EngineStatus = 0
	EngineRunning EngineStatus = 1
	EngineStop    EngineStatus = 2
)

// RunStatus 单次 masscan 调用所处的阶段
type RunStatus int8

const (
	RunConfigured RunStatus = iota
	RunSpawning
	RunExecuting
	RunCapturing
	RunDecoding
	RunSucceeded
	RunFailed
)

func (s RunStatus) String() string {
	switch s {
	case RunConfigured:
		return "configured"
	case RunSpawning:
		return "spawning"
	case RunExecuting:
		return "executing"
	case RunCapturing:
		return "capturing"
	case RunDecoding:
		return "decoding"
	case RunSucceeded:
		return "succeeded"
	case RunFailed:
		return "failed"
	}
	return "unknown"
}

const (
	// DefaultSystemPath 默认从 PATH 中查找 masscan
	DefaultSystemPath string = "masscan"
	// SudoCommand 提权运行时使用的包装命令
	SudoCommand string = "sudo"
	DefaultRate uint   = 1000
)

const (
	FormatText string = "text"
	FormatJSON string = "json"
)

const LogFileName string = "log.log"
