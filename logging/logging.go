package logging

import (
	"fmt"
	"go-masscan/config/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// 未初始化之前使用 nop logger，库代码在测试中也可以安全调用
var logger = *zap.NewNop()
var sugarLogger = *zap.NewNop().Sugar()

// 当前正在写的日志文件，重新初始化时先关掉
var fileWriter *lumberjack.Logger

func GetLogger() *zap.Logger {
	return &logger
}

func GetSugar() *zap.SugaredLogger {
	return &sugarLogger
}

// DefaultLogFile 默认将日志文件放到可执行文件同级
func DefaultLogFile() string {
	file, _ := exec.LookPath(os.Args[0])
	execPath, _ := filepath.Abs(file)
	return filepath.Join(filepath.Dir(execPath), constant.LogFileName)
}

// InitLogger 初始化全局日志，同时输出到 stdout 和滚动日志文件
// logFile 为空时使用 DefaultLogFile()
func InitLogger(debug bool, logFile string) {
	if logFile == "" {
		logFile = DefaultLogFile()
	}

	if err := closeFileWriter(); err != nil {
		fmt.Fprintf(os.Stderr, "close previous log file failed. error: %+v\n", err)
	}

	lumberjackLogger := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   false,
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "name",
		CallerKey:        "caller",
		FunctionKey:      "function",
		MessageKey:       "message",
		StacktraceKey:    zapcore.OmitKey,
		ConsoleSeparator: "|",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(time.RFC3339Nano))
		},
		EncodeName:     zapcore.FullNameEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	// 日志文件里不要颜色控制符，所以文件和终端分别使用不同的 encoder
	fileCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(lumberjackLogger), level)

	stdoutConfig := encoderConfig
	if debug {
		stdoutConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		stdoutConfig.ConsoleSeparator = " "
	}
	stdoutCore := zapcore.NewCore(zapcore.NewConsoleEncoder(stdoutConfig), zapcore.Lock(os.Stdout), level)

	l := zap.New(zapcore.NewTee(fileCore, stdoutCore), zap.AddCaller())

	logger = *l
	sugarLogger = *l.Sugar()
	fileWriter = lumberjackLogger
	sugarLogger.Debugf("logger initialized, file: %s", logFile)
}

// Sync 刷新日志缓冲，程序退出前调用
func Sync() error {
	if err := logger.Sync(); err != nil {
		return fmt.Errorf("sync logger: %w", err)
	}
	return nil
}

// Close 刷新并关闭日志文件，之后恢复成 nop logger，直到下一次 InitLogger
func Close() error {
	_ = logger.Sync()
	logger = *zap.NewNop()
	sugarLogger = *zap.NewNop().Sugar()
	return closeFileWriter()
}

func closeFileWriter() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	return err
}
