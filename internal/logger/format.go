package logger

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// PlainFormatter 输出单行文本：caller [时间] [级别] [component] 消息 k=v...
// 字段按 key 排序，component 与 caller 不重复输出。
type PlainFormatter struct{}

func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return nil, nil
	}
	var b strings.Builder
	if caller := callerOf(entry); caller != "" {
		b.WriteString(caller)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] [%s] ", entry.Time.UTC().Format(time.RFC3339Nano), strings.ToUpper(entry.Level.String()))
	if c, _ := entry.Data[componentKey].(string); c != "" {
		fmt.Fprintf(&b, "[%s] ", c)
	}
	b.WriteString(entry.Message)
	for _, k := range fieldKeys(entry.Data) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func callerOf(entry *logrus.Entry) string {
	if entry.HasCaller() {
		return fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line)
	}
	c, _ := entry.Data["caller"].(string)
	return c
}

func fieldKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k != componentKey && k != "caller" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// shortenFilePath 保留从 internal/ 或 cmd/ 开始的相对路径。
func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	for _, marker := range []string{"/internal/", "/cmd/"} {
		if idx := strings.LastIndex(file, marker); idx != -1 {
			return file[idx+1:]
		}
	}
	return path.Base(file)
}
