package service

import (
	"bufio"
	"encoding/json"
	"fmt"
	"go-masscan/config"
	"go-masscan/config/constant"
	"go-masscan/masscan"
	"io"
	"os"
)

type SaverEngine struct {
	// 引擎状态
	Status constant.EngineStatus

	appConfig *config.AppConfig
}

// NewSaverEngine 创建一个新的 SaverEngine
func NewSaverEngine(appConfig *config.AppConfig) *SaverEngine {
	return &SaverEngine{
		Status:    constant.EngineInit,
		appConfig: appConfig,
	}
}

// Run 把扫描结果写到输出文件
func (engine *SaverEngine) Run(infos []masscan.Info) error {
	defer func() {
		engine.Status = constant.EngineStop
	}()
	engine.Status = constant.EngineRunning

	fp, err := os.OpenFile(engine.appConfig.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("cannot open output file %s: %w", engine.appConfig.OutputFile, err)
	}
	defer func() {
		_ = fp.Close()
	}()

	writer := bufio.NewWriter(fp)
	switch engine.appConfig.OutputFormat {
	case constant.FormatJSON:
		err = WriteJSON(writer, infos)
	default:
		err = WriteText(writer, Flatten(infos))
	}
	if err != nil {
		return fmt.Errorf("write output file %s: %w", engine.appConfig.OutputFile, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write output file %s: %w", engine.appConfig.OutputFile, err)
	}

	logger.Debugf("[SaverEngine] %d hosts written to %s", len(infos), engine.appConfig.OutputFile)
	return nil
}

// WriteText 一个端口一行：host, protocol, port, status, service, banner
func WriteText(w io.Writer, results []PortResult) error {
	for _, r := range results {
		line := fmt.Sprintf("%s, %s, %s, %s, %s, %s\n", r.Host, r.Protocol, r.PortString(), r.Status, r.Service, r.Banner)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON 按照 masscan -oJ 的格式输出
func WriteJSON(w io.Writer, infos []masscan.Info) error {
	if infos == nil {
		infos = make([]masscan.Info, 0)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(infos)
}
