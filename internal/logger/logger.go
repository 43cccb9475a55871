package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// 别名让调用方无需直接引入 logrus。
type (
	Logger   = logrus.Logger
	LogEntry = logrus.Entry
	Fields   = logrus.Fields
)

const (
	// DefaultLogPath 是主日志文件。TUI 占用 stdout，日志只能写文件。
	DefaultLogPath = "logs/gitmaster.log"
	// DefaultLLMLogPath 记录助手请求与流式分片。
	DefaultLLMLogPath = "logs/llm.log"
)

const componentKey = "component"

// Configure 为全局 logger 启用 caller 与 PlainFormatter。
func Configure() {
	configure(Root())
}

func configure(l *Logger) {
	l.SetReportCaller(true)
	l.SetFormatter(PlainFormatter{})
}

// SetupFile 把全局 logger 的输出切到 logPath，返回文件 closer 与实际路径。
func SetupFile(logPath string) (io.Closer, string, error) {
	f, resolved, err := openLogFile(logPath)
	if err != nil {
		return nil, "", err
	}
	Root().SetOutput(f)
	return f, resolved, nil
}

// SetupComponentFile 创建写入独立文件的 logger，条目带 component 字段。
func SetupComponentFile(component, logPath string) (*LogEntry, io.Closer, string, error) {
	f, resolved, err := openLogFile(logPath)
	if err != nil {
		return nil, nil, "", err
	}
	l := logrus.New()
	configure(l)
	l.SetOutput(f)
	return withComponent(logrus.NewEntry(l), component), f, resolved, nil
}

// Root 返回全局 logger。
func Root() *Logger {
	return logrus.StandardLogger()
}

// Named 返回带 component 字段的全局入口。
func Named(component string) *LogEntry {
	return withComponent(logrus.NewEntry(Root()), component)
}

func withComponent(entry *LogEntry, component string) *LogEntry {
	if component == "" {
		return entry
	}
	return entry.WithField(componentKey, component)
}

// SetLevel 按名字设置全局级别（debug、info、warn...），无法识别时返回错误且不修改。
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return err
	}
	Root().SetLevel(lvl)
	return nil
}

func openLogFile(logPath string) (*os.File, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, "", err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", err
	}
	return f, logPath, nil
}
