package logger

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// LLMLogger 记录与模型服务的一次问答：请求、流式分片、完成与错误。
type LLMLogger interface {
	Request(provider, model, text string)
	StreamChunk(provider string, chunk string, index int)
	StreamComplete(provider string, chunks int)
	Error(provider string, err error)
}

// LLMLog 是全局共享的 LLM 日志器。
var LLMLog LLMLogger = NewLLMLogger(nil)

// SetGlobalLLMLogger 覆盖全局 LLM 日志器，传入 nil 时恢复默认实现。
func SetGlobalLLMLogger(l LLMLogger) {
	if l == nil {
		l = NewLLMLogger(nil)
	}
	LLMLog = l
}

// StdLLMLogger 基于 logrus entry 输出。
type StdLLMLogger struct {
	entry *logrus.Entry
}

// NewLLMLogger 使用给定 entry 构造日志器；nil 时写入全局 logger 并附加 component=llm。
func NewLLMLogger(entry *LogEntry) *StdLLMLogger {
	if entry == nil {
		entry = Named("llm")
	}
	return &StdLLMLogger{entry: entry}
}

func (l *StdLLMLogger) Request(provider, model, text string) {
	l.printf(logrus.InfoLevel, "-> request provider=%s model=%s text=%s", provider, model, sanitize(text))
}

func (l *StdLLMLogger) StreamChunk(provider string, chunk string, index int) {
	l.printf(logrus.DebugLevel, "<- chunk provider=%s seq=%d text=%s", provider, index, sanitize(chunk))
}

func (l *StdLLMLogger) StreamComplete(provider string, chunks int) {
	l.printf(logrus.InfoLevel, "<- stream completed provider=%s chunks=%d", provider, chunks)
}

func (l *StdLLMLogger) Error(provider string, err error) {
	l.printf(logrus.ErrorLevel, "!! error provider=%s err=%v", provider, err)
}

// NoopLLMLogger 丢弃所有记录，测试中使用。
type NoopLLMLogger struct{}

func (NoopLLMLogger) Request(string, string, string)  {}
func (NoopLLMLogger) StreamChunk(string, string, int) {}
func (NoopLLMLogger) StreamComplete(string, int)      {}
func (NoopLLMLogger) Error(string, error)             {}

func (l *StdLLMLogger) printf(level logrus.Level, format string, args ...any) {
	if l == nil || l.entry == nil {
		return
	}
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}
	entry := l.entry
	if caller := findCaller(); caller != "" {
		entry = entry.WithField("caller", caller)
	}
	entry.Log(level, fmt.Sprintf(format, args...))
}

func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, "\r", `\r`)
	return text
}

// findCaller 跳过本文件内的帧，返回真正调用方的位置。
func findCaller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !strings.HasSuffix(frame.File, "logger/llm.go") {
			return fmt.Sprintf("%s:%d", shortenFilePath(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return ""
}
