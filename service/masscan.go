package service

import (
	"context"
	"go-masscan/config"
	"go-masscan/config/constant"
	"go-masscan/masscan"
	"strconv"
)

type MasscanEngine struct {
	// 引擎状态
	Status constant.EngineStatus

	scanner masscan.Masscan
}

// NewMasscanEngine 根据命令行参数创建 MasscanEngine，ranges 由 TaskBuilder 生成
func NewMasscanEngine(appConfig *config.AppConfig, ranges string) *MasscanEngine {
	otherArgs := make([]string, 0, len(appConfig.ExtraArgs)+1)
	if appConfig.Banners {
		otherArgs = append(otherArgs, "--banners")
	}
	otherArgs = append(otherArgs, appConfig.ExtraArgs...)

	scanner := masscan.Masscan{}.
		SetSystemPath(appConfig.SystemPath).
		SetPorts(appConfig.Ports).
		SetRanges(ranges).
		SetRate(strconv.FormatUint(uint64(appConfig.Rate), 10)).
		SetExclude(appConfig.Exclude).
		SetOtherArgs(otherArgs)
	if appConfig.Sudo {
		scanner = scanner.SetSudo()
	}

	return &MasscanEngine{
		Status:  constant.EngineInit,
		scanner: scanner,
	}
}

// Scanner 返回引擎使用的 masscan 配置
func (engine *MasscanEngine) Scanner() masscan.Masscan {
	return engine.scanner
}

// Run 启动 masscan 并等待结果
func (engine *MasscanEngine) Run(ctx context.Context) ([]masscan.Info, error) {
	defer func() {
		engine.Status = constant.EngineStop
	}()
	engine.Status = constant.EngineRunning

	logger.Infof("[MasscanEngine] CMD: %s", engine.scanner)
	result, err := engine.scanner.RunContext(ctx)
	if err != nil {
		return nil, err
	}
	logger.Infof("MasscanEngine exit.")
	return result, nil
}
