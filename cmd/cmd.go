package cmd

import (
	"context"
	"fmt"
	"github.com/urfave/cli/v2"
	"go-masscan/config"
	"go-masscan/config/constant"
	"go-masscan/logging"
	"go-masscan/service"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

var logger = logging.GetSugar()
var appConfig = config.GetAppConfig()

func NewApp() *cli.App {
	return &cli.App{
		Name:      "go-masscan",
		Usage:     "Run masscan and collect its JSON results",
		UsageText: "go-masscan -p 80,443 -t 10.0.0.0/24 [options] [-- extra masscan args]",
		Action:    MainAction,
		Version:   "0.1.0",
		// --arg 的值里经常带逗号，例如 --arg=--ports --arg=1,2
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{

			&cli.StringFlag{
				Name:        "masscan",
				Usage:       "Path of the masscan executable",
				Value:       constant.DefaultSystemPath,
				Destination: &appConfig.SystemPath,
			},

			&cli.BoolFlag{
				Name:        "sudo",
				Usage:       "Run masscan through sudo",
				Destination: &appConfig.Sudo,
			},

			&cli.StringFlag{
				Name:        "ports",
				Usage:       "Ports to scan, e.g. 22,8080-8100",
				Destination: &appConfig.Ports,
				Aliases:     []string{"p"},
			},

			&cli.StringFlag{
				Name:        "target",
				Usage:       "Scan targets: IPs, CIDRs or IP ranges separated by commas",
				Destination: &appConfig.Target,
				Aliases:     []string{"t"},
			},

			&cli.StringFlag{
				Name:        "input",
				Usage:       "A file contains a list of targets to be scanned, one line per target",
				Destination: &appConfig.InputFile,
				Aliases:     []string{"i"},
			},

			&cli.UintFlag{
				Name:        "rate",
				Usage:       "Masscan scan rate, packets/sec",
				Value:       constant.DefaultRate,
				Destination: &appConfig.Rate,
				Aliases:     []string{"r"},
			},

			&cli.StringFlag{
				Name:        "exclude",
				Usage:       "Targets to exclude, separated by commas",
				Destination: &appConfig.Exclude,
			},

			&cli.BoolFlag{
				Name:        "banners",
				Usage:       "Grab banners (passes --banners to masscan)",
				Destination: &appConfig.Banners,
			},

			&cli.StringSliceFlag{
				Name:  "arg",
				Usage: "Extra argument passed to masscan as is, can be repeated",
			},

			&cli.StringFlag{
				Name:        "output",
				Usage:       "Output filename",
				Aliases:     []string{"o"},
				Destination: &appConfig.OutputFile,
				DefaultText: "./<target>_out.txt",
			},

			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format: text or json",
				Value:       constant.FormatText,
				Destination: &appConfig.OutputFormat,
				Aliases:     []string{"f"},
			},

			&cli.StringFlag{
				Name:        "log",
				Usage:       "Log filename",
				Destination: &appConfig.LogFile,
				DefaultText: "log.log next to the executable",
			},

			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Debug mode",
				Value:       false,
				Destination: &appConfig.Debug,
			},
		},
		Before: func(c *cli.Context) error {
			// 初始化日志系统
			logging.InitLogger(appConfig.Debug, appConfig.LogFile)

			// --arg 在前，-- 之后的参数在后
			appConfig.ExtraArgs = append(c.StringSlice("arg"), c.Args().Slice()...)

			// 修改输出文件为真实值
			if appConfig.OutputFile == "" {
				appConfig.OutputFile = DefaultOutputFile(appConfig)
			}
			if appConfig.OutputFile == "" {
				appConfig.OutputFile = "./out" + outputExt(appConfig.OutputFormat)
				logger.Warnf("Failed to generate output filename, use default output filename: %s", appConfig.OutputFile)
			}

			return nil
		},
	}
}

func RunApp() error {
	return NewApp().Run(os.Args)
}

func MainAction(c *cli.Context) error {

	// 程序的真正入口
	logger.Debugf("appConfig: %+v", appConfig)

	// 检查参数是否有冲突
	if err := appConfig.Validate(); err != nil {
		logger.Error(err)
		return err
	}

	// Ctrl+C 时结束 masscan
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Scan(ctx, appConfig)
}

// Scan 收集目标、运行 masscan、保存并打印结果
func Scan(ctx context.Context, appConfig *config.AppConfig) error {
	ranges, err := service.NewTaskBuilder(appConfig).Run()
	if err != nil {
		return fmt.Errorf("build targets: %w", err)
	}

	result, err := service.NewMasscanEngine(appConfig, ranges).Run(ctx)
	if err != nil {
		return fmt.Errorf("run masscan: %w", err)
	}

	if err := service.NewSaverEngine(appConfig).Run(result); err != nil {
		return err
	}

	if err := service.PrintTable(os.Stdout, service.Flatten(result)); err != nil {
		logger.Warnf("print result table failed. error: %+v", err)
	}
	logger.Infof("Write %d hosts to file: %s", len(result), appConfig.OutputFile)
	return nil
}

// DefaultOutputFile 没有指定输出文件时根据输入生成文件名
// target 模式取第一个目标作为文件名，文件模式在文件名后面追加 _out
func DefaultOutputFile(appConfig *config.AppConfig) string {
	ext := outputExt(appConfig.OutputFormat)
	if appConfig.Target != "" {
		parts := strings.Split(appConfig.Target, ",")
		// CIDR 里的 / 不能出现在文件名里
		first := strings.ReplaceAll(strings.TrimSpace(parts[0]), "/", "_")
		if len(parts) == 1 {
			return fmt.Sprintf("%s_out%s", first, ext)
		}
		return fmt.Sprintf("%s_etc_out%s", first, ext)
	}
	if appConfig.InputFile != "" {
		base := strings.TrimSuffix(appConfig.InputFile, filepath.Ext(appConfig.InputFile))
		return fmt.Sprintf("%s_out%s", base, ext)
	}
	return ""
}

func outputExt(format string) string {
	if format == constant.FormatJSON {
		return ".json"
	}
	return ".txt"
}
